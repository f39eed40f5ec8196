package kneeboard

// Category classifies a checklist group by operational severity.
type Category string

const (
	// CategoryNormal covers routine phase-of-flight procedures.
	CategoryNormal Category = "normal"

	// CategoryAbnormal covers non-routine but non-critical procedures.
	CategoryAbnormal Category = "abnormal"

	// CategoryEmergency covers time-critical emergency procedures.
	CategoryEmergency Category = "emergency"
)

// ItemKind selects how a checklist item behaves when displayed.
type ItemKind string

const (
	// KindPlainText is a challenge/response or instruction line.
	KindPlainText ItemKind = "plainText"

	// KindNote is informational text with no completion state.
	KindNote ItemKind = "note"

	// KindLocalAltimeter prompts for the local altimeter setting.
	KindLocalAltimeter ItemKind = "localAltimeter"

	// KindOpenNearest opens the nearest-airports view.
	KindOpenNearest ItemKind = "openNearest"

	// KindOpenScratchpad opens a scratchpad; requires a ScratchpadTarget.
	KindOpenScratchpad ItemKind = "openScratchpad"

	// KindFrequencyPrompt prompts for a radio frequency; requires a FrequencyBand.
	KindFrequencyPrompt ItemKind = "frequencyPrompt"
)

// ScratchpadTarget selects which scratchpad an openScratchpad item opens.
type ScratchpadTarget string

const (
	// TargetGeneral opens the general-purpose scratchpad.
	TargetGeneral ScratchpadTarget = "general"

	// TargetClearance opens the clearance scratchpad.
	TargetClearance ScratchpadTarget = "clearance"
)

// FrequencyBand selects which radio a frequencyPrompt item tunes.
type FrequencyBand string

const (
	// BandCom tunes the communication radio.
	BandCom FrequencyBand = "com"

	// BandNav tunes the navigation radio.
	BandNav FrequencyBand = "nav"
)

// CompletionAction is the side effect that fires when an item is completed.
// The zero value means the item completes with no side effect.
type CompletionAction string

const (
	// ActionNone completes the item with no side effect.
	ActionNone CompletionAction = ""

	// ActionAdvance advances to the next checklist.
	ActionAdvance CompletionAction = "advance"

	// ActionOpenFlightPlan opens the flight plan view.
	ActionOpenFlightPlan CompletionAction = "openFlightPlan"

	// ActionCloseFlightPlan closes the flight plan view.
	ActionCloseFlightPlan CompletionAction = "closeFlightPlan"

	// ActionOpenSafeTaxi opens the taxi diagram.
	ActionOpenSafeTaxi CompletionAction = "openSafeTaxi"

	// ActionOpenMap opens the moving map.
	ActionOpenMap CompletionAction = "openMap"
)

// validCategories contains all valid group categories.
var validCategories = map[Category]bool{
	CategoryNormal:    true,
	CategoryAbnormal:  true,
	CategoryEmergency: true,
}

// validItemKinds contains all valid item kinds.
var validItemKinds = map[ItemKind]bool{
	KindPlainText:       true,
	KindNote:            true,
	KindLocalAltimeter:  true,
	KindOpenNearest:     true,
	KindOpenScratchpad:  true,
	KindFrequencyPrompt: true,
}

// validScratchpadTargets contains all valid scratchpad targets.
var validScratchpadTargets = map[ScratchpadTarget]bool{
	TargetGeneral:   true,
	TargetClearance: true,
}

// validFrequencyBands contains all valid frequency bands.
var validFrequencyBands = map[FrequencyBand]bool{
	BandCom: true,
	BandNav: true,
}

// validCompletionActions contains all valid completion actions,
// including the zero value.
var validCompletionActions = map[CompletionAction]bool{
	ActionNone:            true,
	ActionAdvance:         true,
	ActionOpenFlightPlan:  true,
	ActionCloseFlightPlan: true,
	ActionOpenSafeTaxi:    true,
	ActionOpenMap:         true,
}

// IsValidCategory returns true if the category is a known group category.
func IsValidCategory(c Category) bool {
	return validCategories[c]
}

// IsValidItemKind returns true if the kind is a known item kind.
func IsValidItemKind(k ItemKind) bool {
	return validItemKinds[k]
}

// IsValidScratchpadTarget returns true if the target is a known scratchpad target.
func IsValidScratchpadTarget(st ScratchpadTarget) bool {
	return validScratchpadTargets[st]
}

// IsValidFrequencyBand returns true if the band is a known frequency band.
func IsValidFrequencyBand(b FrequencyBand) bool {
	return validFrequencyBands[b]
}

// IsValidCompletionAction returns true if the action is a known completion action.
func IsValidCompletionAction(a CompletionAction) bool {
	return validCompletionActions[a]
}

// Categories returns all group categories in canonical order.
// The slice is a fresh copy on every call.
func Categories() []Category {
	return []Category{CategoryNormal, CategoryAbnormal, CategoryEmergency}
}

// ItemKinds returns all item kinds in canonical order.
func ItemKinds() []ItemKind {
	return []ItemKind{
		KindPlainText,
		KindNote,
		KindLocalAltimeter,
		KindOpenNearest,
		KindOpenScratchpad,
		KindFrequencyPrompt,
	}
}

// ScratchpadTargets returns all scratchpad targets in canonical order.
func ScratchpadTargets() []ScratchpadTarget {
	return []ScratchpadTarget{TargetGeneral, TargetClearance}
}

// FrequencyBands returns all frequency bands in canonical order.
func FrequencyBands() []FrequencyBand {
	return []FrequencyBand{BandCom, BandNav}
}

// CompletionActions returns all completion actions in canonical order,
// starting with the zero value.
func CompletionActions() []CompletionAction {
	return []CompletionAction{
		ActionNone,
		ActionAdvance,
		ActionOpenFlightPlan,
		ActionCloseFlightPlan,
		ActionOpenSafeTaxi,
		ActionOpenMap,
	}
}
