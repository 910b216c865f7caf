package parse

import (
	"testing"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/calibrator"
)

func TestMatchJ2000Header(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   calibrator.Position
		wantOK bool
	}{
		{
			name: "full header with position reference and alternate name",
			line: "0134+329  J2000  B  01h37m41.30s  +33d09m35.1s  ICRF  3C48",
			want: calibrator.Position{
				IAUName:      "0134+329",
				Equinox:      calibrator.EquinoxJ2000,
				PositionCode: "B",
				RA:           "01h37m41.30s",
				Dec:          "+33d09m35.1s",
				PosRef:       "ICRF",
				AltName:      "3C48",
			},
			wantOK: true,
		},
		{
			name: "header without optional fields",
			line: "0005+383  J2000  A  00h08m22.34s  +38d24m13.0s",
			want: calibrator.Position{
				IAUName:      "0005+383",
				Equinox:      calibrator.EquinoxJ2000,
				PositionCode: "A",
				RA:           "00h08m22.34s",
				Dec:          "+38d24m13.0s",
			},
			wantOK: true,
		},
		{
			name: "name still wrapped as markdown link",
			line: "[0005+383](https://science.nrao.edu/cal)  J2000  A  00h08m22.34s  +38d24m13.0s",
			want: calibrator.Position{
				IAUName:      "0005+383",
				Equinox:      calibrator.EquinoxJ2000,
				PositionCode: "A",
				RA:           "00h08m22.34s",
				Dec:          "+38d24m13.0s",
			},
			wantOK: true,
		},
		{
			name:   "band row is not a header",
			line:   "20cm    L  X P P P       2.40                  50",
			wantOK: false,
		},
		{
			name:   "b1950 header is not a j2000 header",
			line:   "0002+381  B1950  A  00h02m51.00s  +38d07m31.0s",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchJ2000Header(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("matchJ2000Header(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("matchJ2000Header(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestMatchB1950Header(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   calibrator.Position
		wantOK bool
	}{
		{
			name: "plain header",
			line: "0002+381  B1950  A  00h02m51.00s  +38d07m31.0s",
			want: calibrator.Position{
				IAUName:      "0002+381",
				Equinox:      calibrator.EquinoxB1950,
				PositionCode: "A",
				RA:           "00h02m51.00s",
				Dec:          "+38d07m31.0s",
			},
			wantOK: true,
		},
		{
			name: "bracketed name",
			line: "[0002+381]  B1950  A  00h02m51.00s  +38d07m31.0s",
			want: calibrator.Position{
				IAUName:      "0002+381",
				Equinox:      calibrator.EquinoxB1950,
				PositionCode: "A",
				RA:           "00h02m51.00s",
				Dec:          "+38d07m31.0s",
			},
			wantOK: true,
		},
		{
			name:   "j2000 header is not a b1950 header",
			line:   "0005+383  J2000  A  00h08m22.34s  +38d24m13.0s",
			wantOK: false,
		},
		{
			name:   "truncated header",
			line:   "0002+381  B1950  A",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matchB1950Header(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("matchB1950Header(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("matchB1950Header(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}
