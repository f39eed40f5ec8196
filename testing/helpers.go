// Package testing provides shared document fixtures for codec and
// integration tests.
package testing

import (
	"github.com/zoobzio/kneeboard"
)

// Sample returns a document exercising every item kind, scratchpad target,
// frequency band, and completion action. Group titles come from the binder
// group table, so the document survives a binder round trip unchanged.
// Each call returns a fresh copy.
func Sample() *kneeboard.Document {
	return &kneeboard.Document{
		Title: "N123AB",
		Groups: []kneeboard.Group{
			{
				Category: kneeboard.CategoryNormal,
				Title:    "Preflight",
				Checklists: []kneeboard.Checklist{
					{
						Title: "Cabin",
						Note:  "Complete before first flight of the day",
						Items: []kneeboard.Item{
							{Kind: kneeboard.KindPlainText, Text: "Documents - CHECK"},
							{Kind: kneeboard.KindNote, Text: "ARROW papers must be aboard", Indent: 1},
							{Kind: kneeboard.KindLocalAltimeter, Text: "Altimeter - SET", Action: kneeboard.ActionAdvance},
							{Kind: kneeboard.KindOpenNearest, Text: "Nearest airports - REVIEW", Action: kneeboard.ActionOpenMap},
						},
					},
					{
						Title: "Radios",
						Items: []kneeboard.Item{
							{Kind: kneeboard.KindOpenScratchpad, Text: "ATIS - COPY", Target: kneeboard.TargetGeneral, Action: kneeboard.ActionOpenFlightPlan},
							{Kind: kneeboard.KindOpenScratchpad, Text: "Clearance - COPY", Target: kneeboard.TargetClearance},
							{Kind: kneeboard.KindFrequencyPrompt, Text: "Ground - SET", Band: kneeboard.BandCom, Action: kneeboard.ActionOpenSafeTaxi},
							{Kind: kneeboard.KindFrequencyPrompt, Text: "VOR - TUNE", Band: kneeboard.BandNav},
						},
					},
				},
			},
			{
				Category: kneeboard.CategoryAbnormal,
				Title:    "Alternator Failure",
				Checklists: []kneeboard.Checklist{
					{
						Title: "Load Shedding",
						Items: []kneeboard.Item{
							{Kind: kneeboard.KindPlainText, Text: "Master - CYCLE", Indent: 2},
							{Kind: kneeboard.KindNote, Text: "Expect 30 minutes of battery"},
						},
					},
				},
			},
			{
				Category: kneeboard.CategoryEmergency,
				Title:    "Engine Failure In Flight",
				Checklists: []kneeboard.Checklist{
					{
						Title: "Restart",
						Note:  "Memory items",
						Items: []kneeboard.Item{
							{Kind: kneeboard.KindPlainText, Text: "Airspeed - 68 KIAS", Action: kneeboard.ActionCloseFlightPlan},
							{Kind: kneeboard.KindPlainText, Text: "Fuel selector - BOTH", Indent: 1},
						},
					},
				},
			},
		},
	}
}

// Minimal returns the smallest interesting valid document: one group, one
// checklist, one plain-text item. Each call returns a fresh copy.
func Minimal() *kneeboard.Document {
	return &kneeboard.Document{
		Groups: []kneeboard.Group{{
			Category: kneeboard.CategoryNormal,
			Title:    "Normal Procedures",
			Checklists: []kneeboard.Checklist{{
				Title: "Checklist",
				Items: []kneeboard.Item{
					{Kind: kneeboard.KindPlainText, Text: "Flaps - UP"},
				},
			}},
		}},
	}
}

// CompactSafe returns a document restricted to what the compact format can
// carry: plain-text, note, and altimeter items with Latin-1 text. Its group
// titles still come from the binder table, so it survives a round trip
// through every format. Each call returns a fresh copy.
func CompactSafe() *kneeboard.Document {
	return &kneeboard.Document{
		Title: "N737CB",
		Groups: []kneeboard.Group{
			{
				Category: kneeboard.CategoryNormal,
				Title:    "Before Takeoff",
				Checklists: []kneeboard.Checklist{
					{
						Title: "Run-up",
						Note:  "Brakes - HOLD",
						Items: []kneeboard.Item{
							{Kind: kneeboard.KindPlainText, Text: "Throttle - 1800 RPM"},
							{Kind: kneeboard.KindPlainText, Text: "Magnetos - CHECK", Indent: 1, Action: kneeboard.ActionAdvance},
							{Kind: kneeboard.KindNote, Text: "Max drop 150 RPM, diff 50 RPM", Indent: 2},
							{Kind: kneeboard.KindLocalAltimeter, Text: "Altimeter - SET"},
						},
					},
				},
			},
			{
				Category: kneeboard.CategoryEmergency,
				Title:    "Engine Fire In Flight",
				Checklists: []kneeboard.Checklist{
					{
						Title: "Shutdown",
						Items: []kneeboard.Item{
							{Kind: kneeboard.KindPlainText, Text: "Mixture - CUTOFF\nFuel selector - OFF"},
							{Kind: kneeboard.KindNote, Text: "Vitesse de plané 65 kt, volets à 0°"},
						},
					},
				},
			},
		},
	}
}
