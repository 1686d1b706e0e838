// Package services contains the stateless domain services of the settlement
// core: the lifecycle engine that applies bulk status transitions under an
// explicit atomicity policy, the batch builder that derives confirmation
// batches and their deposit totals, the aggregator that folds an order
// collection into per-dimension statistics, and the customer-service resolver.
//
// Every service is a pure computation over the order snapshot it is given;
// none of them holds state between calls or touches persistence.
package services
