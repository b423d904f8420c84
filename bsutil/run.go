/*
Copyright © 2026 the backscatter authors.
This file is part of backscatter.

backscatter is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

backscatter is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with backscatter.  If not, see <http://www.gnu.org/licenses/>.
*/

package bsutil

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/backscatter"
	"github.com/spatialmodel/backscatter/internal/hash"
)

// newLogger returns a logger that writes text records at or above level to w.
func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bsutil: LogLevel: %v", err)
	}
	return &logrus.Logger{
		Out: w,
		Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
			DisableSorting:  true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: lvl,
	}, nil
}

// Cloud evaluates the cloud model for scenario s and writes the canopy,
// volume and soil backscatter to outputFile. The output format is
// chosen from the file extension; size is only used for plots.
func Cloud(log logrus.FieldLogger, s *backscatter.Scenario, outputFile string, size PlotSize) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{
		"scenario":    hash.Key(s),
		"calibration": s.Calibration.Name,
	})
	log.WithFields(logrus.Fields{
		"n":     s.Angles.Len(),
		"smc":   s.SMC,
		"alpha": s.Alpha,
		"tau":   s.Tau,
	}).Info("calculating cloud model")

	r, err := s.Cloud()
	if err != nil {
		return err
	}
	if min, max, ok := backscatter.FiniteRange(r.Canopy); ok {
		log.WithFields(logrus.Fields{"min": min, "max": max}).Debug("canopy backscatter range (dB)")
	} else {
		log.Warn("canopy backscatter has no finite values")
	}
	return writeOutput(log, s, r.Table(s.Angles), outputFile, size, start)
}

// BareSoil evaluates the bare-soil model for scenario s and writes the
// result to outputFile. The Alpha and Tau fields of s are not used.
func BareSoil(log logrus.FieldLogger, s *backscatter.Scenario, outputFile string, size PlotSize) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{
		"scenario":    hash.Key(s),
		"calibration": s.Calibration.Name,
	})
	log.WithFields(logrus.Fields{
		"n":   s.Angles.Len(),
		"smc": s.SMC,
	}).Info("calculating bare-soil model")

	soil, err := s.BareSoil()
	if err != nil {
		return err
	}
	return writeOutput(log, s, backscatter.SoilTable(s.Angles, soil), outputFile, size, start)
}

// writeOutput writes t to outputFile in the format implied by its extension.
func writeOutput(log logrus.FieldLogger, s *backscatter.Scenario, t *backscatter.Table, outputFile string, size PlotSize, start time.Time) error {
	format, err := outputFormat(outputFile)
	if err != nil {
		return err
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("bsutil: creating output file: %v", err)
	}
	switch format {
	case "csv":
		err = backscatter.WriteCSV(f, t)
	case "xlsx":
		err = backscatter.WriteXLSX(f, s, t)
	default:
		err = backscatter.WritePlot(f, format, size.Width, size.Height, s, t)
	}
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("bsutil: closing output file: %v", err)
	}
	log.WithFields(logrus.Fields{
		"output":  outputFile,
		"elapsed": time.Since(start),
	}).Info("wrote output")
	return nil
}

// ListCalibrations writes a table of the calibrations to w.
func ListCalibrations(w io.Writer, cals backscatter.Calibrations) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tGHz\tPOL\tC1\tC2\tC3\tD")
	for _, n := range cals.Names() {
		p := cals[n]
		fmt.Fprintf(tw, "%s\t%g\t%s\t%g\t%g\t%g\t%g\n", n, p.FrequencyGHz, p.Polarization, p.C1, p.C2, p.C3, p.D)
	}
	return tw.Flush()
}
