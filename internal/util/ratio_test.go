package util

import (
	"strconv"
	"strings"
	"testing"
)

func TestRatioCommonSizes(t *testing.T) {
	cases := []struct {
		w, h int
		want string
	}{
		{1920, 1080, "16:9"},
		{500, 500, "1:1"},
		{1280, 720, "16:9"},
		{1080, 1920, "9:16"},
		{800, 600, "4:3"},
		{1440, 900, "8:5"},
		{7, 3, "7:3"},
	}
	for _, c := range cases {
		if got := Ratio(c.w, c.h); got != c.want {
			t.Fatalf("Ratio(%d,%d)=%q want %q", c.w, c.h, got, c.want)
		}
	}
}

func TestRatioIsReducedAndProportional(t *testing.T) {
	for w := 1; w <= 60; w++ {
		for h := 1; h <= 60; h++ {
			parts := strings.Split(Ratio(w, h), ":")
			if len(parts) != 2 {
				t.Fatalf("Ratio(%d,%d) malformed", w, h)
			}
			a, _ := strconv.Atoi(parts[0])
			b, _ := strconv.Atoi(parts[1])
			if gcd(a, b) != 1 {
				t.Fatalf("Ratio(%d,%d)=%d:%d not coprime", w, h, a, b)
			}
			if a*h != b*w {
				t.Fatalf("Ratio(%d,%d)=%d:%d not proportional", w, h, a, b)
			}
		}
	}
}

func TestRatioDegenerate(t *testing.T) {
	if got := Ratio(0, 0); got != "0:0" {
		t.Fatalf("Ratio(0,0)=%q", got)
	}
	if got := Ratio(640, 0); got != "1:0" {
		t.Fatalf("Ratio(640,0)=%q", got)
	}
	if got := Ratio(-1920, 1080); got != "16:9" {
		t.Fatalf("Ratio(-1920,1080)=%q", got)
	}
}
