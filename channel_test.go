package formz

import "testing"

func TestChannel_String(t *testing.T) {
	cases := map[Channel]string{
		ChannelValues:   "values",
		ChannelDefaults: "defaults",
		ChannelErrors:   "errors",
		ChannelState:    "state",
		Channel(999):    "unknown",
	}
	for ch, want := range cases {
		if got := ch.String(); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
}

func TestDirection_String(t *testing.T) {
	if s := DirectionDown.String(); s != "down" {
		t.Errorf("expected 'down', got %q", s)
	}
	if s := DirectionUp.String(); s != "up" {
		t.Errorf("expected 'up', got %q", s)
	}
	if s := Direction(7).String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}
