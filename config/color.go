// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/sandbox/render"
)

// ParseColor parses a clear color in any form accepted by
// [colors.FromString]: a standard color name, #rgb, #rrggbb or
// #rrggbbaa hex, rgb(), hsl() or hct(). Hex colors must only
// have hex digits.
func ParseColor(s string) (render.Color, error) {
	if s == "" {
		return render.Color{}, errors.New("empty color")
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if strings.Trim(hex, "0123456789abcdefABCDEF") != "" {
			return render.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
	}
	c, err := colors.FromString(s)
	if err != nil {
		return render.Color{}, err
	}
	return FromColor(c), nil
}

// FromColor returns the clear color for c, with straight
// (not premultiplied) channels.
func FromColor(c color.Color) render.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return render.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255, A: float64(n.A) / 255}
}
