// Package delivery contains the Delivery aggregate and its value objects.
//
// A delivery moves through a small lifecycle:
//
//	Pending(unassigned) --accept--> Pending(assigned) --markPicked--> Picked --markDelivered--> Delivered
//	        |                              |
//	      cancel                        unassign
//	        v                              v
//	    Cancelled                 Pending(unassigned)
//
// Delivered and Cancelled are terminal. Orthogonally to transit, the shop
// records a write-once accept/reject confirmation; rejecting releases any
// bound driver and permanently removes the delivery from the driver pool.
package delivery
