package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/LdDl/osmtrip"
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

func parseNodePair(args []string) (osm.NodeID, osm.NodeID, error) {
	src, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "Bad source node '%s'", args[0])
	}
	dest, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "Bad target node '%s'", args[1])
	}
	return osm.NodeID(src), osm.NodeID(dest), nil
}

func prepareLineGeometry(line orb.LineString, format string) (string, error) {
	if strings.ToLower(format) == "geojson" {
		return osmtrip.PrepareGeoJSONLinestring(line)
	}
	return osmtrip.PrepareWKTLinestring(line), nil
}

func preparePointGeometry(pt orb.Point, format string) (string, error) {
	if strings.ToLower(format) == "geojson" {
		return osmtrip.PrepareGeoJSONPoint(pt)
	}
	return osmtrip.PrepareWKTPoint(pt), nil
}

func printNodes(w io.Writer, planner *osmtrip.Planner, limit int) error {
	n := planner.NodeCount()
	if limit > 0 && limit < n {
		n = limit
	}
	for i := 0; i < n; i++ {
		node, ok := planner.SortedNodeByIndex(i)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%d\t%f\t%f\n", node.ID, node.Lat, node.Lon)
	}
	return nil
}

func runShortest(w io.Writer, planner *osmtrip.Planner, src, dest osm.NodeID, opts *cliOptions) error {
	distance, path := planner.FindShortestPath(src, dest)
	if math.IsInf(distance, 1) {
		fmt.Fprintf(w, "No path from %d to %d\n", src, dest)
		return nil
	}
	fmt.Fprintf(w, "Distance: %.3f mi\n", distance)
	pathStr := make([]string, len(path))
	steps := make([]osmtrip.TripStep, len(path))
	for i, nodeID := range path {
		pathStr[i] = strconv.FormatInt(int64(nodeID), 10)
		steps[i] = osmtrip.TripStep{Mode: osmtrip.ModeUndefined, NodeID: nodeID}
	}
	fmt.Fprintf(w, "Path: %s\n", strings.Join(pathStr, " -> "))
	line, err := planner.PathGeometry(path...)
	if err != nil {
		return err
	}
	geomStr, err := prepareLineGeometry(line, opts.geomFormat)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Geometry: %s\n", geomStr)
	if opts.out != "" {
		return exportSteps(opts.out, planner, steps, opts.geomFormat)
	}
	return nil
}

func runFastest(w io.Writer, planner *osmtrip.Planner, src, dest osm.NodeID, opts *cliOptions) error {
	duration, path := planner.FindFastestPath(src, dest)
	if math.IsInf(duration, 1) {
		fmt.Fprintf(w, "No path from %d to %d\n", src, dest)
		return nil
	}
	fmt.Fprintf(w, "Duration: %.3f h\n", duration)
	stepsStr := make([]string, len(path))
	for i, step := range path {
		stepsStr[i] = step.String()
	}
	fmt.Fprintf(w, "Steps: %s\n", strings.Join(stepsStr, ", "))
	lines, err := planner.GetPathDescription(path)
	if err != nil {
		return errors.Wrap(err, "Can't describe path")
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	if strings.ToLower(opts.geomFormat) == "geojson" {
		geomStr, err := planner.PrepareGeoJSONTrip(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Geometry: %s\n", geomStr)
	} else {
		line, err := planner.TripGeometry(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Geometry: %s\n", osmtrip.PrepareWKTLinestring(line))
	}
	if opts.out != "" {
		return exportSteps(opts.out, planner, path, opts.geomFormat)
	}
	return nil
}

// exportSteps writes itinerary into ';'-separated file with columns:
//
//	seq - int, position of step in path
//	node_id - int64, OSM node
//	mode - string, mode used to reach node (empty for shortest distance paths)
//	geom - geometry (WKT or GeoJSON representation)
func exportSteps(fname string, planner *osmtrip.Planner, path []osmtrip.TripStep, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create output file")
	}
	defer file.Close()
	writer := csv.NewWriter(file)
	writer.Comma = ';'
	err = writer.Write([]string{"seq", "node_id", "mode", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for i, step := range path {
		line, err := planner.PathGeometry(step.NodeID)
		if err != nil {
			return err
		}
		geomStr, err := preparePointGeometry(line[0], geomFormat)
		if err != nil {
			return err
		}
		mode := ""
		if step.Mode != osmtrip.ModeUndefined {
			mode = step.Mode.String()
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", step.NodeID),
			mode,
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write step")
		}
	}
	writer.Flush()
	return writer.Error()
}
