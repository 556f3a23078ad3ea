package chargers

import (
	"encoding/json"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) []POI {
	t.Helper()
	var pois []POI
	if err := json.Unmarshal([]byte(raw), &pois); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return pois
}

const fullRecord = `{
	"AddressInfo": {"Title": "Test Charger", "AddressLine1": "1 Main St", "Town": "London", "Postcode": "SW1A 1AA"},
	"StatusType": {"Title": "Operational"},
	"Connections": [{"ConnectionType": {"Title": "Type2"}}, {"ConnectionType": {"Title": "CCS"}}]
}`

func TestFormat_FullRecord(t *testing.T) {
	got := Format(decode(t, "["+fullRecord+"]"))
	want := "- Test Charger, 1 Main St, London, SW1A 1AA (Operational)\nConnections: Type2, CCS"
	if got != want {
		t.Errorf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormat_Empty(t *testing.T) {
	if got := Format(decode(t, `[]`)); got != NoChargersReply {
		t.Errorf("empty array: got %q", got)
	}
	if got := Format(decode(t, `null`)); got != NoChargersReply {
		t.Errorf("null: got %q", got)
	}
}

func TestFormat_AllMissingAddressInfo(t *testing.T) {
	raw := `[
		{"StatusType": {"Title": "Operational"}},
		{"AddressInfo": null, "Connections": [{"ConnectionType": {"Title": "CCS"}}]},
		{"AddressInfo": {}}
	]`
	if got := Format(decode(t, raw)); got != "" {
		t.Errorf("expected empty reply, got %q", got)
	}
}

func TestFormat_Fallbacks(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "no connections key",
			raw:  `{"AddressInfo": {"Title": "A", "AddressLine1": "B", "Town": "C", "Postcode": "D"}, "StatusType": {"Title": "Operational"}}`,
			want: "- A, B, C, D (Operational)\nConnections: No connections available",
		},
		{
			name: "empty connections",
			raw:  `{"AddressInfo": {"Title": "A"}, "Connections": []}`,
			want: "- A, No address, No town, No postcode (Status Unknown)\nConnections: No connections available",
		},
		{
			name: "address fields absent",
			raw:  `{"AddressInfo": {"Latitude": 51.5}, "StatusType": {}}`,
			want: "- Unknown, No address, No town, No postcode (Status Unknown)\nConnections: No connections available",
		},
		{
			name: "null values",
			raw:  `{"AddressInfo": {"Title": null, "Town": "Leeds"}, "StatusType": null, "Connections": null}`,
			want: "- Unknown, No address, Leeds, No postcode (Status Unknown)\nConnections: No connections available",
		},
		{
			name: "connection without type",
			raw:  `{"AddressInfo": {"Title": "A"}, "Connections": [{}, {"ConnectionType": {"Title": "CHAdeMO"}}, {"ConnectionType": {}}]}`,
			want: "- A, No address, No town, No postcode (Status Unknown)\nConnections: Unknown, CHAdeMO, Unknown",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(decode(t, "["+tc.raw+"]")); got != tc.want {
				t.Errorf("Format() =\n%q\nwant\n%q", got, tc.want)
			}
		})
	}
}

func TestFormat_PreservesOrderAndSkips(t *testing.T) {
	raw := `[
		{"AddressInfo": {"Title": "First"}},
		{"StatusType": {"Title": "Operational"}},
		{"AddressInfo": {"Title": "Second"}},
		{"AddressInfo": {"Title": "Third"}}
	]`
	got := Format(decode(t, raw))
	lines := strings.Split(got, "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), got)
	}
	for i, name := range []string{"First", "Second", "Third"} {
		if !strings.HasPrefix(lines[i*2], "- "+name+",") {
			t.Errorf("line %d: expected charger %s, got %q", i*2, name, lines[i*2])
		}
		if !strings.HasPrefix(lines[i*2+1], "Connections: ") {
			t.Errorf("line %d: expected connections line, got %q", i*2+1, lines[i*2+1])
		}
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("reply should not end with a newline")
	}
}
