// Package prune deletes every Cloudflare Pages deployment of a project
// except the live production one.
//
// A run has three sequential steps:
//
//  1. [Pruner.ResolveCanonicalDeployment] reads the project metadata and
//     returns the ID of the canonical (live) deployment.
//  2. [Pruner.ListAllDeploymentIDs] pages through the deployment listing
//     until an empty page is returned. Each page fetch is retried with
//     exponential backoff; running out of attempts aborts the run.
//  3. [Pruner.DeleteAllExcept] deletes every listed deployment except the
//     canonical one. A failed deletion is logged and the loop moves on.
//
// [Pruner.Run] chains the three and returns a [Report].
package prune
