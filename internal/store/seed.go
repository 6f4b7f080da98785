package store

import (
	"smssync/internal/models"
)

// SeedMessages returns the fixed demo data set written on first load.
func SeedMessages() []models.Message {
	return []models.Message{
		{
			ID:        "msg_1001",
			Sender:    "HDFC Bank",
			SenderID:  "HDFCBK",
			Phone:     "VK-HDFCBK",
			Body:      "Rs. 2,450.00 spent on your HDFC Credit Card at AMAZON on 04-Sep 14:32. Avl limit: Rs. 37,550.00. If not you, call 1800-xxx-xxx.",
			Timestamp: "2025-09-04T09:02:00Z",
			Read:      false,
			Starred:   true,
			Archived:  false,
			Trashed:   false,
			Tags:      []string{"Bank", "Txn"},
		},
		{
			ID:        "msg_1002",
			Sender:    "Airtel",
			SenderID:  "AIRTEL",
			Phone:     "AX-AIRTEL",
			Body:      "Your OTP is 482193 for login. Do not share with anyone. Valid for 10 minutes.",
			Timestamp: "2025-09-04T08:41:00Z",
			Read:      false,
			Starred:   false,
			Archived:  false,
			Trashed:   false,
			Tags:      []string{"OTP"},
		},
		{
			ID:        "msg_1003",
			Sender:    "Flipkart",
			SenderID:  "FLPKRT",
			Phone:     "AD-FLPKRT",
			Body:      "Item delivered: Apple AirPods (3rd Gen). Rate your experience.",
			Timestamp: "2025-09-03T19:10:00Z",
			Read:      true,
			Starred:   false,
			Archived:  false,
			Trashed:   false,
			Tags:      []string{"Delivery"},
		},
		{
			ID:        "msg_1004",
			Sender:    "ICICI Bank",
			SenderID:  "ICICIB",
			Phone:     "VK-ICICIB",
			Body:      "INR 15,000 credited to A/C ****1243 on 03-Sep 12:05 via IMPS. Avl bal: INR 1,24,880. Ref: 22890112.",
			Timestamp: "2025-09-03T06:35:00Z",
			Read:      true,
			Starred:   true,
			Archived:  true,
			Trashed:   false,
			Tags:      []string{"Bank", "Credit"},
		},
		{
			ID:        "msg_1005",
			Sender:    "Local Courier",
			SenderID:  "",
			Phone:     "+91 98765 43210",
			Body:      "Package attempted delivery. Please call +91 98765 43210 to reschedule.",
			Timestamp: "2025-09-02T16:22:00Z",
			Read:      false,
			Starred:   false,
			Archived:  false,
			Trashed:   true,
			Tags:      []string{"Courier"},
		},
		{
			ID:        "msg_1006",
			Sender:    "Swiggy",
			SenderID:  "SWIGGY",
			Phone:     "VM-SWIGGY",
			Body:      "Order #789456 out for delivery. Rider Rahul (98765 11223) will arrive by 02:15 PM.",
			Timestamp: "2025-09-02T08:45:00Z",
			Read:      true,
			Starred:   false,
			Archived:  false,
			Trashed:   false,
			Tags:      []string{"Food", "Delivery"},
		},
		{
			ID:        "msg_1007",
			Sender:    "IRCTC",
			SenderID:  "IRCTC",
			Phone:     "BW-IRCTC",
			Body:      "PNR 1234567890 CONFIRMED. Train 12138 dep 04-Sep 18:20. Coach S5, Seat 32.",
			Timestamp: "2025-09-01T11:05:00Z",
			Read:      true,
			Starred:   false,
			Archived:  false,
			Trashed:   false,
			Tags:      []string{"Travel", "Ticket"},
		},
		{
			ID:        "msg_1008",
			Sender:    "Uber",
			SenderID:  "UBER",
			Phone:     "AD-UBER",
			Body:      "Trip completed. Fare: ₹263.50 paid via UPI. Thanks for riding with Uber.",
			Timestamp: "2025-09-01T13:15:00Z",
			Read:      true,
			Starred:   false,
			Archived:  false,
			Trashed:   false,
			Tags:      []string{"Ride"},
		},
		{
			ID:        "msg_1009",
			Sender:    "UPPCL",
			SenderID:  "UPPCL",
			Phone:     "AX-UPPCL",
			Body:      "Electricity bill ₹1,420 generated for CA 1234xxxx. Due: 10-Sep. Pay to avoid late fee.",
			Timestamp: "2025-08-30T07:10:00Z",
			Read:      false,
			Starred:   false,
			Archived:  false,
			Trashed:   false,
			Tags:      []string{"Bill"},
		},
	}
}
