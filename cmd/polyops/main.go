// Command polyops applies polygon-region operations to WKT files.
//
// Usage:
//
//	polyops -in layer.wkt -op offset -distance -0.4
//	polyops -in a.wkt -with b.wkt -op difference
//	polyops -in layer.wkt -op parts
//
// The result is written to stdout as WKT. Coordinates are micrometres.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/FracktalWorks/CuraEngine/geometry"
)

func main() {
	var (
		in       = flag.String("in", "", "input WKT file (required)")
		with     = flag.String("with", "", "second operand WKT file, for binary operations")
		op       = flag.String("op", "union", "operation: union|intersection|difference|xor|offset|hull|parts|smooth|clean|tube")
		distance = flag.Float64("distance", 0, "offset distance in millimetres (offset, tube)")
		join     = flag.String("join", "miter", "offset join style: miter|round|square")
		miter    = flag.Float64("miter", 0, "miter limit ratio, 0 for the default")
		length   = flag.Float64("length", 0.2, "smoothing removal length in millimetres")
		verbose  = flag.Bool("v", false, "log engine diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		geometry.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *in == "" {
		fmt.Fprintln(os.Stderr, "polyops: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	subject, err := loadWKT(*in)
	if err != nil {
		fatalf("read %s: %v", *in, err)
	}
	var other geometry.Polygons
	if *with != "" {
		if other, err = loadWKT(*with); err != nil {
			fatalf("read %s: %v", *with, err)
		}
	}

	dist := toMicrons(*distance)
	result, err := apply(*op, subject, other, dist, parseJoin(*join), *miter, toMicrons(*length))
	if err != nil {
		fatalf("%v", err)
	}

	result.WriteWKT(os.Stdout)
	fmt.Println()
}

func apply(op string, subject, other geometry.Polygons, distance int64, join geometry.JoinType, miter float64, length int64) (geometry.Polygons, error) {
	switch op {
	case "union":
		return subject.Union(other), nil
	case "intersection":
		return subject.Intersection(other), nil
	case "difference":
		return subject.Difference(other), nil
	case "xor":
		return subject.Xor(other), nil
	case "offset":
		return subject.Offset(distance, join, miter), nil
	case "hull":
		return subject.ApproxConvexHull(0), nil
	case "parts":
		// Flatten: every part's contours in part order.
		var out geometry.Polygons
		for _, part := range subject.SplitIntoParts(false) {
			out.Add(geometry.Polygons(part))
		}
		return out, nil
	case "smooth":
		return subject.Smooth(length), nil
	case "clean":
		cleaned := subject.Union(nil)
		cleaned.RemoveDegenerateVerts()
		cleaned.RemoveColinearEdges(0.0005)
		cleaned.RemoveSmallAreas(0.01, false)
		return cleaned, nil
	case "tube":
		return subject.TubeShape(distance, distance), nil
	}
	return nil, fmt.Errorf("unknown operation %q", op)
}

func loadWKT(path string) (geometry.Polygons, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return geometry.FromWKT(string(data))
}

func parseJoin(name string) geometry.JoinType {
	switch strings.ToLower(name) {
	case "round":
		return geometry.JoinRound
	case "square":
		return geometry.JoinSquare
	}
	return geometry.JoinMiter
}

func toMicrons(millimetres float64) int64 {
	return int64(millimetres * geometry.MicronsPerMillimeter)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "polyops: "+format+"\n", args...)
	os.Exit(1)
}
