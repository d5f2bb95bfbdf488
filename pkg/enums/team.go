package enums

import "fmt"

// Team is a team id whose meaning depends on the format year.
// Use TeamFrom to get the variant matching a year.
type Team interface {
	fmt.Stringer
	Code() uint8
	Known() bool
	Year() Year
}

type (
	Team23 uint8
	Team24 uint8
	Team25 uint8
)

// TeamFrom selects the team table of the given year.
func TeamFrom(year Year, raw uint8) Team {
	switch year {
	case Year23:
		return Team23(raw)
	case Year24:
		return Team24(raw)
	default:
		return Team25(raw)
	}
}

const (
	Team23Mercedes    Team23 = 0
	Team23Ferrari     Team23 = 1
	Team23RedBull     Team23 = 2
	Team23Williams    Team23 = 3
	Team23AstonMartin Team23 = 4
	Team23Alpine      Team23 = 5
	Team23AlphaTauri  Team23 = 6
	Team23Haas        Team23 = 7
	Team23McLaren     Team23 = 8
	Team23AlfaRomeo   Team23 = 9
	Team23CustomTeam  Team23 = 104
)

var team23Names = map[Team23]string{
	0:   "Mercedes",
	1:   "Ferrari",
	2:   "Red Bull Racing",
	3:   "Williams",
	4:   "Aston Martin",
	5:   "Alpine",
	6:   "Alpha Tauri",
	7:   "Haas",
	8:   "McLaren",
	9:   "Alfa Romeo",
	85:  "Mercedes 2020",
	86:  "Ferrari 2020",
	87:  "Red Bull 2020",
	88:  "Williams 2020",
	89:  "Racing Point 2020",
	90:  "Renault 2020",
	91:  "Alpha Tauri 2020",
	92:  "Haas 2020",
	93:  "McLaren 2020",
	94:  "Alfa Romeo 2020",
	95:  "Aston Martin DB11 V12",
	96:  "Aston Martin Vantage F1 Edition",
	97:  "Aston Martin Vantage Safety Car",
	98:  "Ferrari F8 Tributo",
	99:  "Ferrari Roma",
	100: "McLaren 720S",
	101: "McLaren Artura",
	102: "Mercedes AMG GT Black Series Safety Car",
	103: "Mercedes AMG GTR Pro",
	104: "F1 Custom Team",
	106: "Prema '21",
	107: "Uni-Virtuosi '21",
	108: "Carlin '21",
	109: "Hitech '21",
	110: "Art GP '21",
	111: "MP Motorsport '21",
	112: "Charouz '21",
	113: "Dams '21",
	114: "Campos '21",
	115: "BWT '21",
	116: "Trident '21",
	117: "Mercedes AMG GT Black Series",
	118: "Mercedes '22",
	119: "Ferrari '22",
	120: "Red Bull Racing '22",
	121: "Williams '22",
	122: "Aston Martin '22",
	123: "Alpine '22",
	124: "Alpha Tauri '22",
	125: "Haas '22",
	126: "McLaren '22",
	127: "Alfa Romeo '22",
	128: "Konnersport '22",
	129: "Konnersport",
	130: "Prema '22",
	131: "Virtuosi '22",
	132: "Carlin '22",
	133: "MP Motorsport '22",
	134: "Charouz '22",
	135: "Dams '22",
	136: "Campos '22",
	137: "Van Amersfoort Racing '22",
	138: "Trident '22",
	139: "Hitech '22",
	140: "Art GP '22",
}

func (t Team23) Code() uint8    { return uint8(t) }
func (t Team23) Known() bool    { return known(team23Names, t) }
func (t Team23) Year() Year     { return Year23 }
func (t Team23) String() string { return lookup(team23Names, t) }

const (
	Team24Mercedes    Team24 = 0
	Team24Ferrari     Team24 = 1
	Team24RedBull     Team24 = 2
	Team24Williams    Team24 = 3
	Team24AstonMartin Team24 = 4
	Team24Alpine      Team24 = 5
	Team24RB          Team24 = 6
	Team24Haas        Team24 = 7
	Team24McLaren     Team24 = 8
	Team24Sauber      Team24 = 9
	Team24F1Generic   Team24 = 41
	Team24CustomTeam  Team24 = 104
)

var team24Names = map[Team24]string{
	0:   "Mercedes",
	1:   "Ferrari",
	2:   "Red Bull Racing",
	3:   "Williams",
	4:   "Aston Martin",
	5:   "Alpine",
	6:   "RB",
	7:   "Haas",
	8:   "McLaren",
	9:   "Sauber",
	41:  "F1 Generic",
	104: "F1 Custom Team",
	143: "Art GP '23",
	144: "Campos '23",
	145: "Carlin '23",
	146: "PHM '23",
	147: "Dams '23",
	148: "Hitech '23",
	149: "MP Motorsport '23",
	150: "Prema '23",
	151: "Trident '23",
	152: "Van Amersfoort Racing '23",
	153: "Virtuosi '23",
}

func (t Team24) Code() uint8    { return uint8(t) }
func (t Team24) Known() bool    { return known(team24Names, t) }
func (t Team24) Year() Year     { return Year24 }
func (t Team24) String() string { return lookup(team24Names, t) }

const (
	Team25Mercedes    Team25 = 0
	Team25Ferrari     Team25 = 1
	Team25RedBull     Team25 = 2
	Team25Williams    Team25 = 3
	Team25AstonMartin Team25 = 4
	Team25Alpine      Team25 = 5
	Team25RB          Team25 = 6
	Team25Haas        Team25 = 7
	Team25McLaren     Team25 = 8
	Team25Sauber      Team25 = 9
	Team25F1Generic   Team25 = 41
	Team25CustomTeam  Team25 = 104
	Team25APXGP24     Team25 = 142
	Team25APXGP25     Team25 = 154
)

var team25Names = map[Team25]string{
	0:   "Mercedes",
	1:   "Ferrari",
	2:   "Red Bull Racing",
	3:   "Williams",
	4:   "Aston Martin",
	5:   "Alpine",
	6:   "RB",
	7:   "Haas",
	8:   "McLaren",
	9:   "Sauber",
	41:  "F1 Generic",
	104: "F1 Custom Team",
	129: "Konnersport",
	142: "APXGP '24",
	154: "APXGP '25",
	155: "Konnersport '24",
	158: "Art GP '24",
	159: "Campos '24",
	160: "Rodin Motorsport '24",
	161: "AIX Racing '24",
	162: "DAMS '24",
	163: "Hitech '24",
	164: "MP Motorsport '24",
	165: "Prema '24",
	166: "Trident '24",
	167: "Van Amersfoort Racing '24",
	168: "Invicta '24",
	185: "Mercedes '24",
	186: "Ferrari '24",
	187: "Red Bull Racing '24",
	188: "Williams '24",
	189: "Aston Martin '24",
	190: "Alpine '24",
	191: "RB '24",
	192: "Haas '24",
	193: "McLaren '24",
	194: "Sauber '24",
}

func (t Team25) Code() uint8    { return uint8(t) }
func (t Team25) Known() bool    { return known(team25Names, t) }
func (t Team25) Year() Year     { return Year25 }
func (t Team25) String() string { return lookup(team25Names, t) }
