// Package compress provides the payload codecs used by pattern files.
//
// A packed bit matrix payload is small (a full A4 page is a few tens of
// kilobytes) and highly repetitive, so even the fast codecs reach good
// ratios. Zstd gives the best ratio, S2 and LZ4 the best speed, and NoOp
// disables compression entirely.
//
// All codecs are stateless values and safe for concurrent use.
package compress
