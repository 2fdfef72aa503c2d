package contacts

// Fixtures returns the records every store is seeded with
func Fixtures() []Contact {
	return []Contact{
		{ID: 1, Name: "Sai Teja", Email: "saiteja@gmail.com", Age: 23, Phone: "+91 9999999999", Access: AccessAdmin},
		{ID: 2, Name: "Sai", Email: "sai@gmail.com", Age: 22, Phone: "+91 8888888888", Access: AccessManager},
		{ID: 3, Name: "Teja", Email: "teja@gmail.com", Age: 18, Phone: "+91 7777777777", Access: AccessUser},
		{ID: 4, Name: "Vinny", Email: "vinny@gmail.com", Age: 23, Phone: "+91 9999999998", Access: AccessAdmin},
		{ID: 5, Name: "VinnySai", Email: "vinnysai@gmail.com", Age: 23, Phone: "+91 9999999997", Access: AccessUser},
		{ID: 6, Name: "Prabhu", Email: "prabhu@gmail.com", Age: 21, Phone: "+91 6666666666", Access: AccessManager},
		{ID: 7, Name: "Sona", Email: "Sona@gmail.com", Age: 23, Phone: "+91 3333333333", Access: AccessUser},
		{ID: 8, Name: "Sita", Email: "sita@gmail.com", Age: 23, Phone: "+91 2222222222", Access: AccessUser},
		{ID: 9, Name: "Bangaram", Email: "bangaram@gmail.com", Age: 23, Phone: "+91 1111111111", Access: AccessAdmin},
	}
}
