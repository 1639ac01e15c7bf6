package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of a testing subject or one of its fixtures.
//
// When a contract requires multiple dependencies—so simple option idioms aren't sufficient,
// we can create a "XXXSubject" struct that contains all the necessary dependencies as fields.
// This approach lets us use a single "Make" function to set up each testing case within a contract,
// while keeping the configuration extensible in an open‑closed‑principle style.
type Make[Subject any] func(tb testing.TB) Subject

// Contract represents a role interface specification also known as "contract".
//
// The main goal of a contract is to introduce dependency injection pattern at logical level between a consumer and its supplier.
//
// In other words any expectations from a consumer/interactor/use-case towards a used dependency
// should be defined in a contract.
// This allows architecture flexibility since the expectations are not bound to a certain implementation,
// but purely high level and as such can be supplied in various ways.
type Contract interface {
	testcase.Suite
	// Test is the function that asserts expected behavioral requirements from a supplier implementation.
	// These behavioral assumptions are made by the Consumer in order to simplify and stabilise its own code complexity.
	// Every time a Consumer makes an assumption about the behavior of the role interface supplier,
	// it should be clearly defined with tests under this functionality.
	Test(*testing.T)
	// Benchmark will help with what to measure.
	// When you define a role interface contract, you should clearly know what performance aspects are important for your Consumer.
	// Those aspects should be expressed in a form of Benchmark,
	// so different supplier implementations can be easily A/B tested from this aspect as well.
	Benchmark(*testing.B)
}
