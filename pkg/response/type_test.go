package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"property-listings/pkg/response"
)

func TestTimestampMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "utc",
			in:   time.Date(2024, 5, 1, 15, 30, 0, 123456789, time.UTC),
			want: `"2024-05-01T15:30:00.123Z"`,
		},
		{
			name: "converted to utc",
			in:   time.Date(2024, 5, 1, 18, 30, 0, 0, time.FixedZone("IDT", 3*60*60)),
			want: `"2024-05-01T15:30:00.000Z"`,
		},
		{
			name: "zero is null",
			want: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Timestamp(tt.in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestTimestampInStruct(t *testing.T) {
	v := struct {
		At response.Timestamp `json:"at"`
	}{At: response.Timestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `{"at":"2025-01-02T03:04:05.000Z"}`; string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}
