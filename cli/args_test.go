package cli

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Args
		wantErr error
	}{
		{
			name: "dimensions only",
			args: []string{"10", "20"},
			want: Args{Rows: 10, Cols: 20},
		},
		{
			name: "with rooms",
			args: []string{"30", "40", "6", "2", "3", "5", "6"},
			want: Args{Rows: 30, Cols: 40, Rooms: maze.RoomConfig{Count: 6, MinWidth: 2, MinHeight: 3, MaxWidth: 5, MaxHeight: 6}},
		},
		{name: "no arguments", args: nil, wantErr: ErrArgCount},
		{name: "one argument", args: []string{"10"}, wantErr: ErrArgCount},
		{name: "three arguments", args: []string{"10", "10", "2"}, wantErr: ErrArgCount},
		{name: "not a number", args: []string{"10", "ten"}, wantErr: ErrInvalidValue},
		{name: "zero", args: []string{"0", "10"}, wantErr: ErrInvalidValue},
		{name: "negative room size", args: []string{"10", "10", "2", "-1", "2", "3", "3"}, wantErr: ErrInvalidValue},
		{name: "min width above max", args: []string{"10", "10", "2", "4", "2", "3", "3"}, wantErr: maze.ErrInvalidRoomConfig},
		{name: "min height above max", args: []string{"10", "10", "2", "2", "5", "3", "3"}, wantErr: maze.ErrInvalidRoomConfig},
		{name: "room count beyond cells", args: []string{"10", "10", "1152921504606846976", "1", "1", "2", "2"}, wantErr: ErrTooManyRooms},
		{
			name: "room count equal to cells",
			args: []string{"10", "10", "100", "1", "1", "2", "2"},
			want: Args{Rows: 10, Cols: 10, Rooms: maze.RoomConfig{Count: 100, MinWidth: 1, MinHeight: 1, MaxWidth: 2, MaxHeight: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsage(t *testing.T) {
	assert.Equal(t,
		"usage: vinom-maze <rows> <cols> <rooms> <min_w> <min_h> <max_w> <max_h>\n"+
			"       vinom-maze <rows> <cols>\n",
		Usage("vinom-maze"))
}
