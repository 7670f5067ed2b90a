// Package pkg provides the libraries behind raylayout, a directional
// rectangle layout engine.
//
// # Overview
//
// A layout is a tree of rectangles. Each rectangle lives in its parent's
// coordinate space and is positioned by operations (move, stretch, center,
// fit) that travel in a direction until they meet the parent's edge or the
// nearest sibling in the way. The pkg directory is organized as:
//
//  1. [rect] - Rectangles and the node tree
//  2. [raycast] - Sibling-aware ray casting
//  3. [layout] - The directional operations
//  4. [scene] - Declarative TOML/JSON scenes
//  5. [pipeline] - Orchestration (load → layout → render) with caching
//
// # Architecture
//
//	scene file (TOML/JSON)
//	         ↓
//	    [scene] package (tree + operation pipelines)
//	         ↓
//	    [layout] package (operations, backed by [raycast])
//	         ↓
//	    [render] packages (SVG, PNG, JSON, DOT)
//
// # Quick Start
//
//	t := rect.New(rect.Node{W: 200, H: 100})
//	a, _ := t.Add(rect.RootID, rect.Node{Name: "a", W: 10, H: 10})
//	t.Add(rect.RootID, rect.Node{Name: "b", X: 60, W: 10, H: 10})
//
//	e := layout.NewEngine(t)
//	if err := e.Node(a).MoveRight().CenterYParent().Err(); err != nil {
//	    log.Fatal(err)
//	}
//	svg := sink.RenderSVG(t)
//
// # Main Packages
//
// Geometry and layout:
//   - [rect]: Rect, Node and the arena-backed Tree
//   - [raycast]: casting from a corner toward a target across siblings
//   - [measure]: natural and constrained content sizes
//   - [layout]: Engine, Handle and the operation vocabulary
//
// Input and output:
//   - [scene]: scene files with per-node operation pipelines
//   - [io]: flat JSON tree documents
//   - [render/sink]: SVG, PNG and JSON output
//   - [render/nodelink]: Graphviz hierarchy diagrams
//
// Infrastructure:
//   - [pipeline]: the shared CLI/API pipeline
//   - [cache]: file, Redis and null caches with content-hash keys
//   - [observability]: hooks for stage and cache events
//   - [server]: HTTP API
//   - [errors]: coded errors with HTTP status mapping
package pkg
