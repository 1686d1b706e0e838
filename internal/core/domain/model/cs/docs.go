// Package cs contains the customer-service case model: the resolution
// taxonomy for post-shipment complaints and the Record aggregate that stores
// one case per submission together with its resolution-specific payload.
package cs
