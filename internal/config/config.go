// Package config loads bot parameters from an HCL file.
//
// A config file is optional. When present it only needs to name the knobs
// it changes:
//
//	bot {
//	  call_edge  = 0.03
//	  bluff_freq = 0.10
//	}
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/kylewong001/AI-Poker/internal/policy"
)

// fileConfig is the top-level file structure. Pointer fields distinguish
// "not set" from an explicit zero so partial files override only what they
// name.
type fileConfig struct {
	Bot *fileBotParams `hcl:"bot,block"`
}

type fileBotParams struct {
	CallEdge           *float64 `hcl:"call_edge,optional"`
	ValueRaiseFreq     *float64 `hcl:"value_raise_freq,optional"`
	FreeRaiseEquity    *float64 `hcl:"free_raise_equity,optional"`
	StrongEquity       *float64 `hcl:"strong_equity,optional"`
	StrongEquityMargin *float64 `hcl:"strong_equity_margin,optional"`
	JamFreq            *float64 `hcl:"jam_freq,optional"`
	JamEquity          *float64 `hcl:"jam_equity,optional"`
	BluffFreq          *float64 `hcl:"bluff_freq,optional"`
	BluffMinTopFrac    *float64 `hcl:"bluff_min_top_frac,optional"`
	SizeFraction       *float64 `hcl:"size_fraction,optional"`
	BluffSizeFraction  *float64 `hcl:"bluff_size_fraction,optional"`
}

// LoadBotParams reads filename and returns the bot parameters, starting
// from DefaultBotParams and overriding only what the file sets. A missing
// file yields the defaults unchanged.
func LoadBotParams(filename string) (policy.BotParams, error) {
	params := policy.DefaultBotParams()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return params, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return params, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return params, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Bot != nil {
		config.Bot.apply(&params)
	}
	if err := validate(params); err != nil {
		return params, err
	}
	return params, nil
}

func (f *fileBotParams) apply(p *policy.BotParams) {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.CallEdge, f.CallEdge)
	set(&p.ValueRaiseFreq, f.ValueRaiseFreq)
	set(&p.FreeRaiseEquity, f.FreeRaiseEquity)
	set(&p.StrongEquity, f.StrongEquity)
	set(&p.StrongEquityMargin, f.StrongEquityMargin)
	set(&p.JamFreq, f.JamFreq)
	set(&p.JamEquity, f.JamEquity)
	set(&p.BluffFreq, f.BluffFreq)
	set(&p.BluffMinTopFrac, f.BluffMinTopFrac)
	set(&p.SizeFraction, f.SizeFraction)
	set(&p.BluffSizeFraction, f.BluffSizeFraction)
}

func validate(p policy.BotParams) error {
	fractions := map[string]float64{
		"call_edge":            p.CallEdge,
		"value_raise_freq":     p.ValueRaiseFreq,
		"free_raise_equity":    p.FreeRaiseEquity,
		"strong_equity":        p.StrongEquity,
		"strong_equity_margin": p.StrongEquityMargin,
		"jam_freq":             p.JamFreq,
		"jam_equity":           p.JamEquity,
		"bluff_freq":           p.BluffFreq,
		"bluff_min_top_frac":   p.BluffMinTopFrac,
		"bluff_size_fraction":  p.BluffSizeFraction,
	}
	for name, v := range fractions {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be in [0, 1], got %g", name, v)
		}
	}
	if p.SizeFraction <= 0 || p.SizeFraction > 1 {
		return fmt.Errorf("size_fraction must be in (0, 1], got %g", p.SizeFraction)
	}
	return nil
}
