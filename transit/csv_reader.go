package transit

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// ImportFromCSVFiles reads stops (stop_id,node_id) and routes (route,stop_id) files
func ImportFromCSVFiles(stopsFile, routesFile string) (*MemorySystem, error) {
	stops, err := os.Open(stopsFile)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open stops file")
	}
	defer stops.Close()
	routes, err := os.Open(routesFile)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open routes file")
	}
	defer routes.Close()
	return ReadCSV(stops, routes)
}

// ReadCSV reads stops and routes tables. First row of every table is header.
// Rows with non-numeric identifiers are skipped.
func ReadCSV(stops, routes io.Reader) (*MemorySystem, error) {
	sys := NewMemorySystem(nil, nil)

	err := readTable(stops, []string{"stop_id", "node_id"}, func(get func(string) string) {
		stopID, err := strconv.ParseInt(get("stop_id"), 10, 64)
		if err != nil {
			return
		}
		nodeID, err := strconv.ParseInt(get("node_id"), 10, 64)
		if err != nil {
			return
		}
		sys.addStop(Stop{ID: StopID(stopID), NodeID: osm.NodeID(nodeID)})
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't read stops")
	}

	err = readTable(routes, []string{"route", "stop_id"}, func(get func(string) string) {
		name := get("route")
		if name == "" {
			return
		}
		stopID, err := strconv.ParseInt(get("stop_id"), 10, 64)
		if err != nil {
			return
		}
		route, ok := sys.RouteByName(name)
		if !ok {
			route = &Route{Name: name}
			sys.addRoute(route)
		}
		route.StopIDs = append(route.StopIDs, StopID(stopID))
	})
	if err != nil {
		return nil, errors.Wrap(err, "Can't read routes")
	}
	return sys, nil
}

// readTable calls handle for every data row. Header must contain all required columns
func readTable(r io.Reader, required []string, handle func(get func(string) string)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return errors.Wrap(err, "Can't read header")
	}
	h := headerIndex(header)
	for _, column := range required {
		if _, ok := h[column]; !ok {
			return errors.Errorf("Column '%s' is missing", column)
		}
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "Can't read row")
		}
		get := func(k string) string {
			i, ok := h[k]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		handle(get)
	}
	return nil
}

func headerIndex(header []string) map[string]int {
	h := make(map[string]int, len(header))
	for i, column := range header {
		h[strings.ToLower(strings.TrimSpace(column))] = i
	}
	return h
}
