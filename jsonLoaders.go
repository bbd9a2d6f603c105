package main

import (
	"GoConsoleShapes/shape"
	"fmt"

	"github.com/buger/jsonparser"
)

func NewJsonPackage() *Package {
	instance := new(Package)
	instance.M = make(map[string]Loader)

	instance.FilePath = "scene"
	instance.FileExtension = "json"

	instance.M["/"] = SceneLoader
	instance.M["shape"] = ShapeLoader
	instance.M["rectangle"] = RectangleLoader
	instance.M["rubber"] = RubberLoader
	instance.M["polygon"] = PolygonLoader

	return instance
}

func SceneLoader(get LoaderGetter, collector *LoadErrors, payload []byte) interface{} {
	scene, _ := NewScene()
	loader := get("shape")
	if loader == nil {
		collector.Add(fmt.Errorf("%s: %w", "shape", LoaderNotFoundError))
		return nil
	}
	_, err := jsonparser.ArrayEach(payload, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if collector.Add(err) {
			return
		}
		object := loader(get, collector, value)
		if object == nil {
			return
		}
		scene.Add(object.(shape.Shape))
	}, "shapes")
	if collector.Add(err) {
		return nil
	}
	return scene
}

// ShapeLoader dispatches one scene entry by its "type" discriminator.
func ShapeLoader(get LoaderGetter, collector *LoadErrors, payload []byte) interface{} {
	sType, err := jsonparser.GetString(payload, "type")
	if collector.Add(err) {
		return nil
	}
	loader := get(sType)
	if loader == nil {
		collector.Add(fmt.Errorf("%s: %w", sType, LoaderNotFoundError))
		return nil
	}
	return loader(get, collector, payload)
}

func RectangleLoader(get LoaderGetter, collector *LoadErrors, payload []byte) interface{} {
	w, err := jsonparser.GetFloat(payload, "width")
	collector.Add(err)
	h, err := jsonparser.GetFloat(payload, "height")
	collector.Add(err)
	pos, ok := pointValue(collector, payload, "pos")
	if !ok || collector.HasError() {
		return nil
	}
	rect, err := shape.NewRectangle(w, h, pos)
	if collector.Add(err) {
		return nil
	}
	return rect
}

func RubberLoader(get LoaderGetter, collector *LoadErrors, payload []byte) interface{} {
	r1, err := jsonparser.GetFloat(payload, "r1")
	collector.Add(err)
	r2, err := jsonparser.GetFloat(payload, "r2")
	collector.Add(err)
	pos1, ok1 := pointValue(collector, payload, "pos1")
	pos2, ok2 := pointValue(collector, payload, "pos2")
	if !ok1 || !ok2 || collector.HasError() {
		return nil
	}
	rubber, err := shape.NewRubber(r1, pos1, r2, pos2)
	if collector.Add(err) {
		return nil
	}
	return rubber
}

// PolygonLoader reads "vertices" as an array of [x, y] pairs.
func PolygonLoader(get LoaderGetter, collector *LoadErrors, payload []byte) interface{} {
	var vertices []shape.Point
	_, err := jsonparser.ArrayEach(payload, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if collector.Add(err) {
			return
		}
		if dataType != jsonparser.Array {
			collector.Add(fmt.Errorf("vertex: %w", ParseError))
			return
		}
		var coords []float64
		jsonparser.ArrayEach(value, func(num []byte, dataType jsonparser.ValueType, offset int, err error) {
			f, err := jsonparser.ParseFloat(num)
			if collector.Add(err) {
				return
			}
			coords = append(coords, f)
		})
		if len(coords) != 2 {
			collector.Add(fmt.Errorf("vertex: %w", ParseError))
			return
		}
		vertices = append(vertices, shape.Point{X: coords[0], Y: coords[1]})
	}, "vertices")
	if collector.Add(err) || collector.HasError() {
		return nil
	}
	poly, err := shape.NewPolygon(vertices)
	if collector.Add(err) {
		return nil
	}
	return poly
}

func pointValue(collector *LoadErrors, payload []byte, key string) (shape.Point, bool) {
	x, err := jsonparser.GetFloat(payload, key, "x")
	if collector.Add(err) {
		return shape.Point{}, false
	}
	y, err := jsonparser.GetFloat(payload, key, "y")
	if collector.Add(err) {
		return shape.Point{}, false
	}
	return shape.Point{X: x, Y: y}, true
}
