// SPDX-License-Identifier: MIT

// Package dfs implements the depth-first traversals of the railway network:
// plain reachability (used to cut company graphs out of the base network) and
// simple-route enumeration (used to build route graphs whose edges stand for
// complete station-to-station routes).
//
// Both traversals honour two rules a textbook DFS lacks:
//
//   - Continuation: a Side vertex entered through a non-greedy edge may only
//     be left through a greedy edge. A train arriving at a hex edge from the
//     inside of the hex must cross into the neighbouring hex and cannot turn
//     onto another track of the same hex. Entered through a greedy edge (or
//     as the start) the Side may be left through any edge. Stations and HQ
//     vertices never restrict.
//   - Re-entry: the explored state of a Side vertex depends on how it was
//     entered. A Side seen only in the restricted state is expanded again when
//     later reached through a greedy edge; reaching a Side through a
//     non-greedy edge a second time adds nothing and is skipped. A vertex is
//     never left through the edge it was entered by.
//
// Sink vertices are reported but never expanded, except as the start vertex.
//
// Complexity:
//
//   - Reachable: O(V + E); a Side is expanded at most once restricted and
//     once per incident greedy edge.
//   - Routes:    exponential in the worst case (all simple paths); callers run
//     it on company graphs where stations cut paths short.
//
// Options:
//
//   - WithContext(ctx)   cancellation via context.Context.
//   - WithOnVisit(fn)    discovery hook; error aborts traversal.
//   - WithStop(fn)       route end predicate (Routes only).
//   - WithMaxDepth(n)    limit the number of edges walked.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if the start is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
