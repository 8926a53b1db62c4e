// Package fieldplot renders quick-look diagnostics of circuits and coil
// cages with gonum/plot: ripple profiles along the midplane and field
// magnitude sweeps around the torus.
//
// These are design-review plots, not publication figures: one line per
// plot, sensible axis labels, PNG (or any extension plot.Save accepts)
// out. The core evaluation packages stay free of file I/O; everything
// that touches the filesystem lives here.
package fieldplot
