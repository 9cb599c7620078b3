// Package catalog holds the data model of the creature catalog and the
// display rules shared by every view.
//
// An Entry is an immutable record resolved from the remote API. Views never
// format raw fields themselves; they go through FormatNumber, DisplayName,
// FormatHeight, FormatWeight and FormatExperience so the card list, the
// detail overlay and the plain CLI output agree on every digit.
//
// Heights arrive in decimeters and weights in hectograms, so both are
// divided by ten for display:
//
//	catalog.FormatHeight(7)  // "0.7 m"
//	catalog.FormatWeight(69) // "6.9 kg"
package catalog
