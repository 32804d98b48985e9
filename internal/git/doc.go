// Package git locates a repository's hooks directory on disk.
//
// Resolution works purely on the filesystem, without invoking the git
// binary, so it behaves identically whether or not git is installed in
// the build environment.
//
// # Worktrees and Submodules
//
// In an ordinary checkout .git is a directory and hooks live directly
// under it. In a linked worktree or a submodule .git is a one-line file
// of the form "gitdir: <path>" pointing at administrative state kept
// elsewhere. A linked worktree's gitdir target additionally contains a
// commondir file pointing back at the shared repository, which is where
// Git actually looks for hooks. [HooksDir] follows both levels of
// indirection.
package git
