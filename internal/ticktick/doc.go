// Package ticktick provides a client for the TickTick Open API.
//
// This package wraps the TickTick Open API (open/v1) and provides
// functionality for:
//   - Managing projects (list, get project data, create, delete)
//   - Managing tasks (get, create, update, complete, delete)
//
// The client returns raw API records without normalization; the
// agent-facing model and the conversions between the two live in the
// tasks package. Keeping the wire format separate means the numeric
// priority scale, status codes and checklist item records of the
// upstream API never leak past the normalization layer.
//
// # Authentication
//
// TickTick issues long-lived personal API tokens. The client sends the
// token as a Bearer credential on every request via an oauth2 static
// token source. There is no refresh flow; an expired or revoked token
// surfaces as a 401 APIError.
//
// # Example Usage
//
//	client := ticktick.NewClient(token)
//
//	// List all projects
//	projects, err := client.ListProjects(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Fetch the active tasks of a project
//	data, err := client.GetProjectData(ctx, projects[0].ID)
//	if err != nil {
//	    log.Fatal(err)
//	}
package ticktick
