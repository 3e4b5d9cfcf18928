// Package protocol owns the SEPD wire contract shared by the decoder packages.
//
// Ownership boundary:
// - wire constants (magic, packet type, header sizes)
// - sentinel decode errors
//
// Decoding lives in the subpackages:
// - variant: self-describing tagged values
// - fields: field id dispatch table
// - frame: packet header and sub-packet framing
package protocol
