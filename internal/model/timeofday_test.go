package model

import (
	"encoding/json"
	"testing"
)

func TestTimeOfDayDisplay(t *testing.T) {
	cases := []struct {
		in   TimeOfDay
		want string
	}{
		{TimeOfDay{Hour: 9, Minute: 30}, "9:30 AM"},
		{TimeOfDay{Hour: 0, Minute: 0}, "12:00 AM"},
		{TimeOfDay{Hour: 12, Minute: 0}, "12:00 PM"},
		{TimeOfDay{Hour: 17, Minute: 0}, "5:00 PM"},
	}
	for _, c := range cases {
		if got := c.in.Display(); got != c.want {
			t.Errorf("%s: got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	data, err := json.Marshal(TimeOfDay{Hour: 9, Minute: 30})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"09:30"` {
		t.Errorf("marshalled to %s", data)
	}

	var decoded TimeOfDay
	if err := json.Unmarshal([]byte(`"14:00"`), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded != (TimeOfDay{Hour: 14}) {
		t.Errorf("decoded to %+v", decoded)
	}

	if err := json.Unmarshal([]byte(`"25:99"`), &decoded); err == nil {
		t.Error("expected an error for an impossible time")
	}
}
