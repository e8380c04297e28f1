// Package trend estimates the linear trend of the most recent samples of a
// series using an ordinary least-squares fit.
//
// The fit runs over the trailing window only, with x = 0..n-1 counted from
// the first sample in that window, so the slope is expressed in input units
// per sample step:
//
//	perDay := trend.Slope(dailyWeights, 14)
//
// Insufficient data yields 0 rather than an error. A zero slope therefore
// means "no reliable trend" and does not distinguish a flat series from a
// series that was too short to fit.
package trend
