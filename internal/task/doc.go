// Package task defines the task record persisted by trackr.
//
// A task has three fields, all of which are always present:
//
//	{
//	  "id": 1,
//	  "description": "Water the plants",
//	  "status": "todo"
//	}
//
// # Task Status Values
//
//   - "todo": Task is pending
//   - "in-progress": Task is currently being worked on
//   - "done": Task is complete
//
// Status strings are matched case-insensitively when parsed and are always
// rendered in lowercase.
//
// A task list is an ordered []Task kept in file order. IDs are expected to
// be unique but nothing here enforces it.
package task
