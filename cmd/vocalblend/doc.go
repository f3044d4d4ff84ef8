// Command vocalblend finds the weighted blend of two vocal-separation
// models that maximizes the average SDR over a collection of tracks.
package main
