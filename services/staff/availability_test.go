package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWindows(t *testing.T) {
	tests := []struct {
		name    string
		windows []string
		wantErr bool
	}{
		{"empty is fine", nil, false},
		{"single window", []string{"Monday 09:00-17:00"}, false},
		{"twelve hour clock", []string{"Tuesday 9:00 AM-5:00 PM"}, false},
		{"full week", []string{
			"Monday 09:00-17:00",
			"Tuesday 09:00-17:00",
			"Wednesday 09:00-13:00",
			"Thursday 09:00-17:00",
			"Friday 09:00-15:00",
		}, false},
		{"lowercase weekday", []string{"monday 09:00-17:00"}, false},
		{"missing range", []string{"Monday"}, true},
		{"wrong separator", []string{"Monday 09:00/17:00"}, true},
		{"inverted range", []string{"Monday 17:00-09:00"}, true},
		{"empty range", []string{"Monday 09:00-09:00"}, true},
		{"unknown weekday", []string{"Caturday 09:00-17:00"}, true},
		{"unparseable start", []string{"Monday nine-17:00"}, true},
		{"duplicate weekday", []string{"Monday 09:00-12:00", "monday 13:00-17:00"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateWindows(tc.windows)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
