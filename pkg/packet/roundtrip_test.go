package packet_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mpapenbr/f1tel/pkg/enums"
	"github.com/mpapenbr/f1tel/pkg/packet"
	"github.com/mpapenbr/f1tel/testsupport/basedata"
)

// year dependent fields are held in omit.Val which has unexported fields
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

var allEventCodes = []enums.EventCode{
	enums.EventSessionStarted, enums.EventSessionEnded, enums.EventFastestLap,
	enums.EventRetirement, enums.EventDRSEnabled, enums.EventDRSDisabled,
	enums.EventTeamMateInPits, enums.EventChequeredFlag, enums.EventRaceWinner,
	enums.EventPenalty, enums.EventSpeedTrap, enums.EventStartLights,
	enums.EventLightsOut, enums.EventDriveThroughServed, enums.EventStopGoServed,
	enums.EventFlashback, enums.EventButtons, enums.EventRedFlag,
	enums.EventOvertake, enums.EventSafetyCar, enums.EventCollision,
}

func roundTripParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	return parameters
}

// Decoding arbitrary payloads, encoding the result and decoding it again
// yields the same packet.
func TestRoundTripProperty(t *testing.T) {
	for _, tc := range allPackets() {
		t.Run(tc.String(), func(t *testing.T) {
			size, _ := packet.PayloadSize(tc.year, tc.id)
			h := basedata.SampleHeader(tc.year, tc.id)
			properties := gopter.NewProperties(roundTripParameters())

			properties.Property("decode(encode(decode(b))) == decode(b)", prop.ForAll(
				func(b []byte, codeIdx int) bool {
					if tc.id == packet.IDEvent {
						code := allEventCodes[codeIdx]
						if code.Since() > tc.year {
							code = enums.EventButtons
						}
						copy(b, code)
					}
					p1, err := packet.Decode(h, b)
					if err != nil {
						t.Logf("decode: %v", err)
						return false
					}
					enc, err := p1.MarshalBinary()
					if err != nil || len(enc) != size {
						t.Logf("encode: %v (%d bytes)", err, len(enc))
						return false
					}
					p2, err := packet.Decode(h, enc)
					if err != nil {
						t.Logf("decode encoded: %v", err)
						return false
					}
					if diff := cmp.Diff(p1, p2, cmpopts.EquateNaNs(), exportAll); diff != "" {
						t.Logf("mismatch (-first +second):\n%s", diff)
						return false
					}
					return true
				},
				gen.SliceOfN(size, gen.UInt8()),
				gen.IntRange(0, len(allEventCodes)-1),
			))
			properties.TestingRun(t)
		})
	}
}

// Payloads of any other size are rejected with a length error.
func TestLengthProperty(t *testing.T) {
	for _, tc := range allPackets() {
		t.Run(tc.String(), func(t *testing.T) {
			size, _ := packet.PayloadSize(tc.year, tc.id)
			h := basedata.SampleHeader(tc.year, tc.id)
			properties := gopter.NewProperties(roundTripParameters())

			properties.Property("len(b) != size fails", prop.ForAll(
				func(n int) bool {
					_, err := packet.Decode(h, make([]byte, n))
					return errors.Is(err, packet.ErrInvalidLength)
				},
				gen.IntRange(0, 2*size).SuchThat(func(n int) bool { return n != size }),
			))
			properties.TestingRun(t)
		})
	}
}
