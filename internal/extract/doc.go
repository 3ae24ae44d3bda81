// Package extract infers capture dates from file and folder names.
//
// Five heuristics run in fixed priority order: WhatsApp media names, Android
// camera names, date-prefixed names, millisecond-epoch UUID names, and
// screenshot-prefixed names (which strip the prefix and re-run the chain).
// The first hit that is not in the future wins; there is no confidence
// weighting. All times are naive local times.
package extract
