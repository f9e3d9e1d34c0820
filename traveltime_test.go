package srtk

import "testing"

func TestTravelTimeVelocity(t *testing.T) {
	tests := []struct {
		name      string
		thickness []float64
		sVelocity []float64
		depth     float64
		want      float64
	}{
		{
			name:      "uniform profile recovers the layer velocity",
			thickness: []float64{10., 0.},
			sVelocity: []float64{200., 200.},
			depth:     30.,
			want:      200.,
		},
		{
			name:      "two layers, harmonic not arithmetic",
			thickness: []float64{15., 0.},
			sVelocity: []float64{100., 300.},
			depth:     30.,
			// 30/(15/100 + 15/300)
			want: 150.,
		},
		{
			name:      "zero depth defaults to the 30 m window",
			thickness: []float64{15., 0.},
			sVelocity: []float64{100., 300.},
			depth:     0.,
			want:      150.,
		},
		{
			name:      "shallow window inside the first layer",
			thickness: []float64{15., 0.},
			sVelocity: []float64{100., 300.},
			depth:     5.,
			want:      100.,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TravelTimeVelocity(tt.thickness, tt.sVelocity, tt.depth)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("TravelTimeVelocity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVs30(t *testing.T) {
	thickness := []float64{15., 0.}
	sVelocity := []float64{100., 300.}
	if got, want := Vs30(thickness, sVelocity), TravelTimeVelocity(thickness, sVelocity, 30.); got != want {
		t.Errorf("Vs30() = %v, want %v", got, want)
	}
}

func TestSiteClassEC8(t *testing.T) {
	tests := []struct {
		vs30 float64
		want string
	}{
		{1200., "A"},
		{800., "A"},
		{799., "B"},
		{360., "B"},
		{359., "C"},
		{180., "C"},
		{179., "D"},
		{90., "D"},
	}
	for _, tt := range tests {
		if got := SiteClassEC8(tt.vs30); got != tt.want {
			t.Errorf("SiteClassEC8(%v) = %q, want %q", tt.vs30, got, tt.want)
		}
	}
}
