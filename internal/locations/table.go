package locations

import "sort"

// Spyfall location data. Each pool holds 14 roles, one more than the
// largest supported table (the spy takes no role), so a full room can
// always be dealt unique roles.
var pools = map[string][]string{
	"Film Studio": {
		"Film Director", "Lead Actor/Actress", "Choreographer", "Music Director",
		"Costume Designer", "Playback Singer", "Set Designer", "Camera Operator",
		"Light Technician", "Sound Engineer", "Makeup Artist", "Stunt Coordinator",
		"Junior Artist", "Production Assistant",
	},
	"Cricket Stadium": {
		"Team Captain", "Head Coach", "Fast Bowler", "Spin Bowler",
		"Wicket Keeper", "Cricket Commentator", "Pitch Curator", "Team Doctor",
		"Fielding Coach", "Video Analyst", "Stadium Manager", "Groundsman",
		"Scoreboard Operator", "Security Head",
	},
	"Tech Park Office": {
		"Project Manager", "Senior Developer", "QA Engineer", "HR Manager",
		"System Admin", "Team Lead", "Client Coordinator", "DevOps Engineer",
		"UI/UX Designer", "Scrum Master", "Product Owner", "Data Analyst",
		"Technical Writer", "Facilities Manager",
	},
	"Wedding Venue": {
		"Wedding Planner", "Head Chef", "Mehendi Artist", "Photographer",
		"Priest/Pandit", "Decorator", "Music Band Leader", "Videographer",
		"Catering Manager", "Light Technician", "Valet Parking Staff",
		"Makeup Artist", "Security Guard", "Guest Relations",
	},
	"Local Railway Station": {
		"Station Master", "Ticket Collector", "Tea Vendor", "Railway Police",
		"Platform Inspector", "Food Stall Owner", "Coolie/Porter",
		"Cleaning Supervisor", "Announcement Officer", "Signal Operator",
		"Booking Clerk", "Railway Engineer", "Luggage Office Staff",
		"Medical Room Staff",
	},
	"Shopping Mall": {
		"Mall Manager", "Store Owner", "Security Guard", "Food Court Chef",
		"Cinema Manager", "Maintenance Staff", "Customer Service Rep",
		"Parking Supervisor", "Housekeeping Head", "Display Designer",
		"Game Zone Operator", "HVAC Technician", "Lost & Found Staff",
		"Events Coordinator",
	},
	"Hospital": {
		"Chief Doctor", "Head Nurse", "Pharmacist", "Lab Technician",
		"Reception Manager", "Ambulance Driver", "Ward Assistant", "Radiologist",
		"Physiotherapist", "Security Guard", "Dietitian", "Blood Bank Officer",
		"ICU Specialist", "Hospital Administrator",
	},
	"College Campus": {
		"Principal", "Professor", "Lab Assistant", "Librarian",
		"Canteen Owner", "Sports Coach", "Student Council President",
		"Placement Officer", "Computer Lab Admin", "Administrative Staff",
		"Campus Security", "Hostel Warden", "College Counselor",
		"Maintenance Supervisor",
	},
	"Five Star Hotel": {
		"General Manager", "Executive Chef", "Concierge", "Spa Manager",
		"Restaurant Host", "Housekeeping Head", "Valet Parking Staff",
		"Front Office Manager", "Bellboy", "Food & Beverage Director",
		"Room Service Staff", "Event Coordinator", "Pool Lifeguard",
		"Hotel Security",
	},
	"Government Office": {
		"Senior Officer", "Clerk", "Peon", "Document Writer",
		"Security Guard", "IT Support", "Public Relations Officer",
		"Office Superintendent", "Accounts Officer", "Data Entry Operator",
		"Records Manager", "Administrative Assistant", "Dispatch Clerk",
		"Facility Manager",
	},
	"Local Market": {
		"Vegetable Vendor", "Fruit Seller", "Spice Merchant", "Flower Shop Owner",
		"Street Food Vendor", "Jewelry Shop Owner", "Market Inspector",
		"Cloth Merchant", "Mobile Shop Owner", "Wholesale Dealer", "Cart Puller",
		"Tea Shop Owner", "Local Police", "Market Association Head",
	},
	"Temple Complex": {
		"Head Priest", "Temple Administrator", "Prasad Distributor",
		"Devotional Singer", "Temple Guard", "Flower Garland Maker",
		"Donation Counter", "Temple Trustee", "Kitchen Manager",
		"Maintenance Staff", "Gift Shop Owner", "Shoe Stand Keeper",
		"Cleaning Staff", "Guide",
	},
	"Metro Station": {
		"Station Controller", "Ticket Booth Officer", "Security Personnel",
		"Maintenance Engineer", "Customer Care Rep", "Cleaning Supervisor",
		"Shop Vendor", "Platform Supervisor", "CCTV Operator",
		"Escalator Technician", "Lost & Found Officer", "First Aid Staff",
		"Train Operator", "Information Desk Staff",
	},
	"Street Food Corner": {
		"Chaat Wala", "Pani Puri Vendor", "Dosa Maker", "Tea Master",
		"Juice Vendor", "Helper", "Regular Customer", "Chinese Food Vendor",
		"Chat Shop Owner", "Ice Cream Seller", "Biryani Vendor",
		"Sandwich Maker", "Delivery Boy", "Health Inspector",
	},
	"Modern Gym": {
		"Gym Manager", "Personal Trainer", "Yoga Instructor", "Dietitian",
		"Front Desk Staff", "Equipment Maintenance", "Zumba Instructor",
		"CrossFit Trainer", "Membership Coordinator", "Locker Room Attendant",
		"Physiotherapist", "Supplement Shop Owner", "Cleaning Staff",
		"CCTV Monitor",
	},
	"Public Park": {
		"Park Manager", "Gardener", "Security Guard", "Yoga Teacher",
		"Walking Club Leader", "Ice Cream Vendor", "Maintenance Worker",
		"Children's Play Area Supervisor", "Horticulturist", "Park Guide",
		"Ticket Collector", "First Aid Staff", "Cleaning Supervisor",
		"Event Coordinator",
	},
	"Police Station": {
		"Station Inspector", "Sub Inspector", "Constable", "Records Officer",
		"Traffic Police", "Investigation Officer", "Control Room Operator",
		"Cyber Crime Expert", "Forensic Officer", "Lady Constable",
		"Police Photographer", "Lock-up Guard", "Computer Operator",
		"Evidence Room Manager",
	},
	"Auto Stand": {
		"Auto Union Leader", "Auto Driver", "Traffic Cop", "Tea Stall Owner",
		"Mechanic", "Passenger", "Newspaper Vendor", "Snack Shop Owner",
		"Pan Shop Vendor", "Auto Spare Parts Seller", "Local Police",
		"Parking Attendant", "Mobile Recharge Shop", "Street Food Vendor",
	},
}

// All returns every location name in a stable (sorted) order.
func All() []string {
	names := make([]string, 0, len(pools))
	for name := range pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RolePool returns a copy of the role pool for a location. Asking for an
// unknown location is a programmer error and returns nil.
func RolePool(location string) []string {
	pool, ok := pools[location]
	if !ok {
		return nil
	}
	return append([]string(nil), pool...)
}

// Static adapts the package data to the engine's table interface.
type Static struct{}

func (Static) All() []string                 { return All() }
func (Static) RolePool(location string) []string { return RolePool(location) }
