package jobs

import "encoding/json"

const TaskSavePlan = "plan:save"

type SavePlanPayload struct {
	PlanID string          `json:"plan_id"`
	Plan   json.RawMessage `json:"plan"`
}
