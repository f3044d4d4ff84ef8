// Package trackio discovers track directories and decodes their WAV
// stems into float audio buffers.
package trackio
