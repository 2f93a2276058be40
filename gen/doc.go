// Package gen builds random expression trees.
//
// A generated tree is always rooted at a start node whose only child is a
// connective of arity > 0. Below that, each slot is filled with a
// connective with probability [Config.FillProb] or with a variable, until
// [Config.MaxDepth] is reached where only variables are placed. Binary
// connectives below the first level are wrapped in parens nodes.
package gen
