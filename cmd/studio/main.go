// studio is a headless authoring session: it loads the configured
// scene (or builds a starter scene), applies a few edits through the
// command history, and saves the result. The windowed editor shell
// drives the same packages.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"studio3d/internal/command"
	"studio3d/internal/editorconfig"
	"studio3d/internal/engine"
	"studio3d/internal/serializer"
)

func main() {
	scenePath := flag.String("scene", "", "scene file to load and save (defaults to the configured default scene)")
	flag.Parse()

	prefs := editorconfig.Load()
	path := *scenePath
	if path == "" {
		path = prefs.DefaultScene
	}

	mgr := engine.NewSceneManager()
	history := command.NewHistoryWithDepth(prefs.MaxUndo)

	mgr.SetObjectAddedCallback(func(obj *engine.SceneObject) {
		fmt.Printf("  + %s (%s)\n", obj.Name, obj.Type)
	})
	mgr.SetObjectRemovedCallback(func(name string) {
		fmt.Printf("  - %s\n", name)
	})

	if _, err := os.Stat(path); err == nil {
		if err := serializer.LoadScene(mgr, path); err != nil {
			log.Fatalf("load scene %s: %v", path, err)
		}
		fmt.Printf("Loaded scene %q (%d objects)\n", mgr.SceneName, mgr.ObjectCount())
	} else {
		buildStarterScene(mgr)
		fmt.Printf("Created scene %q (%d objects)\n", mgr.SceneName, mgr.ObjectCount())
	}

	runSession(mgr, history)

	mgr.Update(0)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.Fatalf("create scene dir: %v", err)
	}
	if err := serializer.SaveScene(mgr, path); err != nil {
		log.Fatalf("save scene %s: %v", path, err)
	}
	fmt.Printf("Saved %s\n", path)
}

func buildStarterScene(mgr *engine.SceneManager) {
	mgr.CreateScene("Untitled")

	camera := mgr.CreateObject("Main Camera", "Camera")
	camera.SetPosition(rl.Vector3{X: 0, Y: 2, Z: 6})
	mgr.SetActiveCamera(camera.Name)

	ground := mgr.CreateObject("Ground", "Mesh")
	ground.SetScale(rl.Vector3{X: 20, Y: 1, Z: 20})
	ground.AddTag("static")

	cube := mgr.CreateObject("Cube", "Mesh")
	cube.SetPosition(rl.Vector3{X: 0, Y: 1, Z: 0})

	sun := mgr.CreateLight("Sun", engine.LightDirectional)
	sun.Direction = rl.Vector3Normalize(rl.Vector3{X: 0.5, Y: -1, Z: -0.5})
	sun.Intensity = 0.9
}

// runSession exercises the command history the way a short editing
// session would: a couple of discrete edits, a merged drag, one undo.
func runSession(mgr *engine.SceneManager, history *command.History) {
	cube := mgr.GetObject("Cube")
	if cube == nil {
		return
	}
	mgr.SelectObject(cube.Name)

	history.ExecuteCommand(command.NewMoveCommand(cube, rl.Vector3{X: 1, Y: 1, Z: 0}), mgr, false)

	// A drag: every step mergeable, one history entry at the end.
	for i := 2; i <= 4; i++ {
		cmd := command.NewMoveCommand(cube, rl.Vector3{X: float32(i), Y: 1, Z: 0})
		history.ExecuteCommand(cmd, mgr, true)
	}

	history.ExecuteCommand(command.NewScaleCommand(cube, rl.Vector3{X: 2, Y: 2, Z: 2}), mgr, false)
	history.Undo(mgr)

	flyToSelection(mgr)

	fmt.Printf("History: %d undoable, next undo %q\n", history.UndoCount(), history.UndoDescription())
}

// flyToSelection eases the active camera toward the selected object,
// stepping the animation at a fixed frame rate the way the render loop
// would. Camera flight is navigation, so it stays out of the history.
func flyToSelection(mgr *engine.SceneManager) {
	camera := mgr.ActiveCamera()
	target := mgr.SelectedObject()
	if camera == nil || target == nil {
		return
	}

	goal := rl.Vector3Add(target.WorldPosition(), rl.Vector3{Y: 2, Z: 6})
	anim := engine.NewFocusAnimation(camera.Transform.Position, goal, 0.5)
	for done := false; !done; {
		var pos rl.Vector3
		pos, done = anim.Update(1.0 / 60.0)
		camera.SetPosition(pos)
	}
	fmt.Printf("Camera focused on %s\n", target.Name)
}
