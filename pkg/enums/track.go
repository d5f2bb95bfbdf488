package enums

// Track is the circuit id of a session. The wire value is signed, -1 means unknown.
type Track int8

const (
	TrackUnknown            Track = -1
	TrackMelbourne          Track = 0
	TrackPaulRicard         Track = 1
	TrackShanghai           Track = 2
	TrackSakhir             Track = 3
	TrackCatalunya          Track = 4
	TrackMonaco             Track = 5
	TrackMontreal           Track = 6
	TrackSilverstone        Track = 7
	TrackHockenheim         Track = 8
	TrackHungaroring        Track = 9
	TrackSpa                Track = 10
	TrackMonza              Track = 11
	TrackSingapore          Track = 12
	TrackSuzuka             Track = 13
	TrackAbuDhabi           Track = 14
	TrackTexas              Track = 15
	TrackBrazil             Track = 16
	TrackAustria            Track = 17
	TrackSochi              Track = 18
	TrackMexico             Track = 19
	TrackBaku               Track = 20
	TrackSakhirShort        Track = 21
	TrackSilverstoneShort   Track = 22
	TrackTexasShort         Track = 23
	TrackSuzukaShort        Track = 24
	TrackHanoi              Track = 25
	TrackZandvoort          Track = 26
	TrackImola              Track = 27
	TrackPortimao           Track = 28
	TrackJeddah             Track = 29
	TrackMiami              Track = 30
	TrackLasVegas           Track = 31
	TrackLosail             Track = 32
	TrackSilverstoneReverse Track = 39
	TrackAustriaReverse     Track = 40
	TrackZandvoortReverse   Track = 41
)

var trackNames = map[Track]string{
	TrackUnknown:            "Unknown",
	TrackMelbourne:          "Melbourne",
	TrackPaulRicard:         "Paul Ricard",
	TrackShanghai:           "Shanghai",
	TrackSakhir:             "Sakhir",
	TrackCatalunya:          "Catalunya",
	TrackMonaco:             "Monaco",
	TrackMontreal:           "Montreal",
	TrackSilverstone:        "Silverstone",
	TrackHockenheim:         "Hockenheim",
	TrackHungaroring:        "Hungaroring",
	TrackSpa:                "Spa",
	TrackMonza:              "Monza",
	TrackSingapore:          "Singapore",
	TrackSuzuka:             "Suzuka",
	TrackAbuDhabi:           "Abu Dhabi",
	TrackTexas:              "Texas",
	TrackBrazil:             "Brazil",
	TrackAustria:            "Austria",
	TrackSochi:              "Sochi",
	TrackMexico:             "Mexico",
	TrackBaku:               "Baku",
	TrackSakhirShort:        "Sakhir Short",
	TrackSilverstoneShort:   "Silverstone Short",
	TrackTexasShort:         "Texas Short",
	TrackSuzukaShort:        "Suzuka Short",
	TrackHanoi:              "Hanoi",
	TrackZandvoort:          "Zandvoort",
	TrackImola:              "Imola",
	TrackPortimao:           "Portimao",
	TrackJeddah:             "Jeddah",
	TrackMiami:              "Miami",
	TrackLasVegas:           "Las Vegas",
	TrackLosail:             "Losail",
	TrackSilverstoneReverse: "Silverstone (Reverse)",
	TrackAustriaReverse:     "Austria (Reverse)",
	TrackZandvoortReverse:   "Zandvoort (Reverse)",
}

func (t Track) Known() bool    { return known(trackNames, t) }
func (t Track) String() string { return lookup(trackNames, t) }
