package streetmap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

// OSMScanner is common part of osmxml and osmpbf scanners
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// ImportFromOSMFile reads every node and way from *.osm / *.xml / *.osm.pbf file
func ImportFromOSMFile(ctx context.Context, filename string, logger *slog.Logger) (*Map, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Info("opening OSM file", "file", filename)
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open OSM file")
	}
	defer file.Close()

	var scanner OSMScanner
	// Guess file extension and prepare correct scanner
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".osm", ".xml":
		scanner = osmxml.New(ctx, file)
	case ".pbf":
		scanner = osmpbf.New(ctx, file, 4)
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
	defer scanner.Close()

	st := time.Now()
	m, err := scanMap(scanner)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read OSM file '%s'", filename)
	}
	logger.Info("OSM file has been read", "nodes", m.NodeCount(), "ways", m.WayCount(), "took", time.Since(st))
	return m, nil
}

// ReadOSM reads every node and way from OSM XML stream
func ReadOSM(ctx context.Context, r io.Reader) (*Map, error) {
	scanner := osmxml.New(ctx, r)
	defer scanner.Close()
	m, err := scanMap(scanner)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read OSM XML")
	}
	return m, nil
}

func scanMap(scanner OSMScanner) (*Map, error) {
	m := NewMap(nil, nil)
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			node := &Node{
				ID:   obj.ID,
				Lat:  obj.Lat,
				Lon:  obj.Lon,
				Tags: make(osm.Tags, len(obj.Tags)),
			}
			copy(node.Tags, obj.Tags)
			m.addNode(node)
		case *osm.Way:
			way := &Way{
				ID:      obj.ID,
				NodeIDs: make([]osm.NodeID, 0, len(obj.Nodes)),
				Tags:    make(osm.Tags, len(obj.Tags)),
			}
			copy(way.Tags, obj.Tags)
			for _, wayNode := range obj.Nodes {
				way.NodeIDs = append(way.NodeIDs, wayNode.ID)
			}
			m.addWay(way)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
