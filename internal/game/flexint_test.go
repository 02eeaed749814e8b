package game

import (
	"encoding/json"
	"testing"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    int
		wantErr bool
	}{
		{"plain number", `42`, 42, false},
		{"quoted number", `"42"`, 42, false},
		{"thousands separators", `"1,722"`, 1722, false},
		{"negative", `-3`, -3, false},
		{"empty string", `""`, 0, false},
		{"null", `null`, 0, false},
		{"garbage", `"abc"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.data), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
			if err == nil && f.Int() != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.data, f.Int(), tt.want)
			}
		})
	}
}
