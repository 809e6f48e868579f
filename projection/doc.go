// Package projection converts shape coordinates between geographic
// WGS84 longitude/latitude and a planar UTM zone, so that the frequency
// core only ever operates on locally Euclidean coordinates in meters.
package projection
