// Package io provides JSON import and export for rectangle trees.
//
// # JSON Format
//
// A tree is written as a flat list of nodes, parents before children:
//
//	{
//	  "width": 200,
//	  "height": 100,
//	  "nodes": [
//	    {"id": 0, "parent": -1, "name": "stage", "x": 0, "y": 0, "w": 200, "h": 100},
//	    {"id": 1, "parent": 0, "name": "card", "x": 82.5, "y": 87, "w": 35, "h": 13, "color": "steelblue"},
//	    {"id": 2, "parent": 1, "name": "title", "x": 0, "y": 0, "w": 35, "h": 13, "label": "hello"}
//	  ]
//	}
//
// Coordinates are relative to the parent. The width and height at the top
// level repeat the root's size for consumers that only need the canvas.
//
// Documents carry committed geometry only. Operation pipelines live in
// scene files (see package scene); a document is what a scene looks like
// after its pipelines have run.
//
// # Import and Export
//
// Use [ImportJSON] and [ExportJSON] for files, or [ReadJSON] and
// [WriteJSON] for any reader or writer. Sibling order and names survive a
// round trip, so a re-imported tree answers Lookup and Children the same way.
package io
