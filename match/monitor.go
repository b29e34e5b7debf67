package match

import "github.com/culinate/dishfinder/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterNormalize(normalized string)
	AfterStrategy(kind core.MatchKind, hits int)
	SkippedSemantic(highConfidence int)
	Finish(results []core.MatchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) AfterNormalize(_ string)               {}
func (n *noopMonitor) AfterStrategy(_ core.MatchKind, _ int) {}
func (n *noopMonitor) SkippedSemantic(_ int)                 {}
func (n *noopMonitor) Finish(_ []core.MatchResult)           {}
