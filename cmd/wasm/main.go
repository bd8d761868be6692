//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/shapenest/shapenest/internal/engine"
	"github.com/shapenest/shapenest/internal/geom"
	"github.com/shapenest/shapenest/internal/scene"
)

var editor *engine.Editor

func main() {
	editor = engine.NewSampleEditor(640, 480)

	api := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	api.Set("newScene", js.FuncOf(newScene))
	api.Set("loadSampleScene", js.FuncOf(loadSampleScene))
	api.Set("createShape", js.FuncOf(createShape))
	api.Set("commitShape", js.FuncOf(commitShape))
	api.Set("discardShape", js.FuncOf(discardShape))
	api.Set("setTransform", js.FuncOf(setTransform))
	api.Set("adjustTransform", js.FuncOf(adjustTransform))
	api.Set("deleteShape", js.FuncOf(deleteShape))
	api.Set("setSelection", js.FuncOf(setSelection))

	// --- Queries (frontend ← backend) ---
	api.Set("render", js.FuncOf(render))
	api.Set("hitTest", js.FuncOf(hitTest))
	api.Set("getHierarchy", js.FuncOf(getHierarchy))
	api.Set("getSelection", js.FuncOf(getSelection))
	api.Set("getRootId", js.FuncOf(getRootID))
	api.Set("isStable", js.FuncOf(isStable))
	api.Set("getPoints", js.FuncOf(getPoints))
	api.Set("getParams", js.FuncOf(getParams))

	js.Global().Set("shapenestEngine", api)
	js.Global().Set("shapenestWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errResult(err error) interface{} {
	return js.ValueOf(map[string]interface{}{"error": err.Error()})
}

// --- Command Handlers ---

func newScene(this js.Value, args []js.Value) interface{} {
	width, height := 640.0, 480.0
	if len(args) >= 2 {
		width = args[0].Float()
		height = args[1].Float()
	}
	editor = engine.NewEditor(width, height)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSampleScene(this js.Value, args []js.Value) interface{} {
	editor = engine.NewSampleEditor(640, 480)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// createShape(parentId, kind, paramsJSON, transformJSON) → {shapeId, stable}
func createShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return js.ValueOf(map[string]interface{}{"error": "createShape requires parentId, kind, params, transform"})
	}

	parentID := args[0].String()
	kind := scene.Kind(args[1].String())

	var params scene.Params
	if err := json.Unmarshal([]byte(args[2].String()), &params); err != nil {
		return errResult(err)
	}

	var transform geom.Transform
	if err := json.Unmarshal([]byte(args[3].String()), &transform); err != nil {
		return errResult(err)
	}

	res, err := editor.CreateShape(parentID, kind, params, transform)
	if err != nil {
		return errResult(err)
	}

	return js.ValueOf(map[string]interface{}{
		"shapeId": res.ShapeID,
		"stable":  res.Stable,
	})
}

func commitShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing shape id"})
	}
	if err := editor.CommitShape(args[0].String()); err != nil {
		return errResult(err)
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func discardShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing shape id"})
	}
	if err := editor.DiscardShape(args[0].String()); err != nil {
		return errResult(err)
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

// setTransform(shapeId, transformJSON) → {applied}. An unstable placement is
// reverted and reported as applied=false.
func setTransform(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(map[string]interface{}{"error": "setTransform requires shapeId and transform"})
	}

	var transform geom.Transform
	if err := json.Unmarshal([]byte(args[1].String()), &transform); err != nil {
		return errResult(err)
	}

	applied, err := editor.SetShapeTransform(args[0].String(), transform)
	if err != nil {
		return errResult(err)
	}
	return js.ValueOf(map[string]interface{}{"applied": applied})
}

// adjustTransform(shapeId, deltaJSON) → {applied}. The delta composes onto
// the current transform: positions and rotations sum, scales multiply. Pass
// scale {1,1} for a pure move.
func adjustTransform(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf(map[string]interface{}{"error": "adjustTransform requires shapeId and delta"})
	}

	var delta geom.Transform
	if err := json.Unmarshal([]byte(args[1].String()), &delta); err != nil {
		return errResult(err)
	}

	applied, err := editor.AdjustShapeTransform(args[0].String(), delta)
	if err != nil {
		return errResult(err)
	}
	return js.ValueOf(map[string]interface{}{"applied": applied})
}

func deleteShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing shape id"})
	}
	if err := editor.DeleteShape(args[0].String()); err != nil {
		return errResult(err)
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func setSelection(this js.Value, args []js.Value) interface{} {
	id := ""
	if len(args) > 0 && args[0].Type() == js.TypeString {
		id = args[0].String()
	}
	editor.SetSelection(id)
	return nil
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(editor.RenderJSON())
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	return js.ValueOf(editor.HitTest(args[0].Float(), args[1].Float()))
}

func getHierarchy(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(editor.TreeSummary())
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(editor.Selection())
}

func getRootID(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(editor.RootID())
}

func isStable(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing shape id"})
	}
	stable, err := editor.IsStable(args[0].String())
	if err != nil {
		return errResult(err)
	}
	return js.ValueOf(map[string]interface{}{"stable": stable})
}

func getPoints(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf(map[string]interface{}{"error": "missing shape id"})
	}
	points, err := editor.ResolvePoints(args[0].String())
	if err != nil {
		return errResult(err)
	}
	data, err := json.Marshal(points)
	if err != nil {
		return errResult(err)
	}
	return js.ValueOf(string(data))
}

func getParams(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("[]")
	}
	specs := editor.Params(scene.Kind(args[0].String()))
	data, err := json.Marshal(specs)
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}
