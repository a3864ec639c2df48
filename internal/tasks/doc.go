// Package tasks implements the agent-facing task model and the
// normalization layer between that model and the raw TickTick API
// records served by the ticktick package.
//
// The package has two halves:
//
//   - Pure transforms: the normalization codec (ToAgentTask /
//     ToUpstreamTask), the date normalizer and the priority mapper.
//     These are stateless functions with no I/O.
//   - The Service: search, partial update, create, complete and the
//     project operations, each performing one or two upstream round
//     trips through the Upstream interface.
//
// # Why a merge-update engine
//
// The TickTick Open API only supports whole-record replacement. Partial
// updates therefore fetch the current record, overlay the requested
// changes onto the normalized form, denormalize on top of the fetched
// record and submit the result. The sequence is two round trips and is
// not atomic: a concurrent edit between fetch and replace is silently
// overwritten (last writer wins). The API exposes no version token, so
// no optimistic-concurrency check is possible.
//
// # Known upstream limitations
//
// Completed tasks cannot be listed (the project data endpoint returns
// active tasks only), and completion is one-way: the Open API has no
// uncomplete operation.
package tasks
