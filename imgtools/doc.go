// imgtools gathers the image plumbing that the generation pipeline
// consumes but doesn't own: decoding and encoding, high quality
// resizing, brightness/contrast enhancement and the luminance
// conversion used consistently across the whole module.
package imgtools
