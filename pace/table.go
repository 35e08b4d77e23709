package pace

// row is one reference entry: every training pace for a given goal time.
// All paces are seconds per mile; splits are total seconds for the rep.
type row struct {
	goalSec   int
	easyMin   float64
	easyMax   float64
	marathon  float64
	threshold float64
	interval  float64
	race      float64
	split400  float64
	split800  float64
	split1600 float64
}

var tables = map[Distance][]row{
	FiveK:    rowsFiveK,
	TenK:     rowsTenK,
	Half:     rowsHalf,
	Marathon: rowsMarathon,
}

var rowsMarathon = []row{
	{goalSec: 10800, easyMin: 457, easyMax: 517, marathon: 412, threshold: 389, interval: 353, race: 412, split400: 88, split800: 175, split1600: 351},  // 3:00:00
	{goalSec: 12600, easyMin: 526, easyMax: 586, marathon: 481, threshold: 454, interval: 412, race: 481, split400: 102, split800: 205, split1600: 410}, // 3:30:00
	{goalSec: 14400, easyMin: 594, easyMax: 654, marathon: 549, threshold: 518, interval: 471, race: 549, split400: 117, split800: 234, split1600: 468}, // 4:00:00
	{goalSec: 16200, easyMin: 663, easyMax: 723, marathon: 618, threshold: 583, interval: 529, race: 618, split400: 131, split800: 263, split1600: 526}, // 4:30:00
	{goalSec: 18000, easyMin: 732, easyMax: 792, marathon: 687, threshold: 648, interval: 588, race: 687, split400: 146, split800: 292, split1600: 585}, // 5:00:00
	{goalSec: 19800, easyMin: 800, easyMax: 860, marathon: 755, threshold: 713, interval: 647, race: 755, split400: 161, split800: 322, split1600: 643}, // 5:30:00
}

var rowsHalf = []row{
	{goalSec: 5100, easyMin: 451, easyMax: 511, marathon: 406, threshold: 383, interval: 348, race: 389, split400: 86, split800: 173, split1600: 346},  // 1:25:00
	{goalSec: 5700, easyMin: 498, easyMax: 558, marathon: 453, threshold: 428, interval: 388, race: 435, split400: 96, split800: 193, split1600: 386},  // 1:35:00
	{goalSec: 6300, easyMin: 546, easyMax: 606, marathon: 501, threshold: 473, interval: 429, race: 481, split400: 107, split800: 213, split1600: 427}, // 1:45:00
	{goalSec: 6900, easyMin: 594, easyMax: 654, marathon: 549, threshold: 518, interval: 470, race: 526, split400: 117, split800: 234, split1600: 467}, // 1:55:00
	{goalSec: 7500, easyMin: 641, easyMax: 701, marathon: 596, threshold: 563, interval: 511, race: 572, split400: 127, split800: 254, split1600: 508}, // 2:05:00
	{goalSec: 8100, easyMin: 689, easyMax: 749, marathon: 644, threshold: 608, interval: 552, race: 618, split400: 137, split800: 274, split1600: 549}, // 2:15:00
	{goalSec: 8700, easyMin: 737, easyMax: 797, marathon: 692, threshold: 653, interval: 593, race: 664, split400: 147, split800: 295, split1600: 590}, // 2:25:00
	{goalSec: 9300, easyMin: 785, easyMax: 845, marathon: 740, threshold: 698, interval: 634, race: 709, split400: 158, split800: 315, split1600: 630}, // 2:35:00
	{goalSec: 9900, easyMin: 832, easyMax: 892, marathon: 787, threshold: 743, interval: 675, race: 755, split400: 168, split800: 336, split1600: 671}, // 2:45:00
}

var rowsTenK = []row{
	{goalSec: 2280, easyMin: 445, easyMax: 505, marathon: 400, threshold: 378, interval: 343, race: 367, split400: 85, split800: 171, split1600: 341},  // 38:00
	{goalSec: 2520, easyMin: 487, easyMax: 547, marathon: 442, threshold: 417, interval: 379, race: 406, split400: 94, split800: 188, split1600: 377},  // 42:00
	{goalSec: 2760, easyMin: 529, easyMax: 589, marathon: 484, threshold: 457, interval: 415, race: 444, split400: 103, split800: 206, split1600: 413}, // 46:00
	{goalSec: 3000, easyMin: 571, easyMax: 631, marathon: 526, threshold: 497, interval: 451, race: 483, split400: 112, split800: 224, split1600: 448}, // 50:00
	{goalSec: 3240, easyMin: 613, easyMax: 673, marathon: 568, threshold: 537, interval: 487, race: 521, split400: 121, split800: 242, split1600: 484}, // 54:00
	{goalSec: 3480, easyMin: 656, easyMax: 716, marathon: 611, threshold: 576, interval: 523, race: 560, split400: 130, split800: 260, split1600: 520}, // 58:00
	{goalSec: 3720, easyMin: 698, easyMax: 758, marathon: 653, threshold: 616, interval: 559, race: 599, split400: 139, split800: 278, split1600: 556}, // 1:02:00
	{goalSec: 3960, easyMin: 740, easyMax: 800, marathon: 695, threshold: 656, interval: 595, race: 637, split400: 148, split800: 296, split1600: 592}, // 1:06:00
	{goalSec: 4200, easyMin: 782, easyMax: 842, marathon: 737, threshold: 695, interval: 631, race: 676, split400: 157, split800: 314, split1600: 627}, // 1:10:00
}

var rowsFiveK = []row{
	{goalSec: 1080, easyMin: 440, easyMax: 500, marathon: 395, threshold: 373, interval: 339, race: 348, split400: 84, split800: 169, split1600: 337},  // 18:00
	{goalSec: 1200, easyMin: 484, easyMax: 544, marathon: 439, threshold: 414, interval: 376, race: 386, split400: 93, split800: 187, split1600: 374},  // 20:00
	{goalSec: 1320, easyMin: 528, easyMax: 588, marathon: 483, threshold: 456, interval: 414, race: 425, split400: 103, split800: 206, split1600: 412}, // 22:00
	{goalSec: 1440, easyMin: 572, easyMax: 632, marathon: 527, threshold: 497, interval: 451, race: 463, split400: 112, split800: 224, split1600: 448}, // 24:00
	{goalSec: 1560, easyMin: 616, easyMax: 676, marathon: 571, threshold: 539, interval: 489, race: 502, split400: 122, split800: 243, split1600: 486}, // 26:00
	{goalSec: 1680, easyMin: 660, easyMax: 720, marathon: 615, threshold: 580, interval: 527, race: 541, split400: 131, split800: 262, split1600: 524}, // 28:00
	{goalSec: 1800, easyMin: 703, easyMax: 763, marathon: 658, threshold: 621, interval: 564, race: 579, split400: 140, split800: 280, split1600: 561}, // 30:00
	{goalSec: 1920, easyMin: 747, easyMax: 807, marathon: 702, threshold: 663, interval: 602, race: 618, split400: 150, split800: 299, split1600: 599}, // 32:00
	{goalSec: 2040, easyMin: 791, easyMax: 851, marathon: 746, threshold: 704, interval: 639, race: 657, split400: 159, split800: 318, split1600: 635}, // 34:00
}
