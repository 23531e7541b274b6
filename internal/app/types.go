package app

import "colcon-ls/internal/types"

type ListRequest struct {
	// BasePaths are crawled recursively. When both BasePaths and Paths
	// are empty the current directory is crawled.
	BasePaths []string
	// Paths are checked non-recursively: only direct children can be
	// classified as packages.
	Paths  []string
	Filter string
	Exact  bool
}

type ListResult struct {
	Records []types.PackageRecord
}
