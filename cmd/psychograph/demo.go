package main

import "github.com/psychograph/psychograph/internal/export"

// demoThreads returns two synthetic conversation threads so the full
// pipeline can run without a real export.
func demoThreads() map[string]export.Thread {
	return map[string]export.Thread{
		"alex_demo": {
			Name:  "alex_demo",
			Title: "Alex",
			Participants: []export.Participant{
				{Name: "Patient"},
				{Name: "Alex"},
			},
			Messages: []export.RawMessage{
				{SenderName: "Patient", Content: "I'm fine, nothing's wrong, I just don't want to talk about it.", TimestampMS: 1000},
				{SenderName: "Alex", Content: "You seem really upset though?", TimestampMS: 2000},
				{SenderName: "Patient", Content: "I'm not upset. You're always projecting onto me.", TimestampMS: 3000},
				{SenderName: "Alex", Content: "I'm just worried about you", TimestampMS: 4000},
				{SenderName: "Patient", Content: "It's literally not a big deal, you're overreacting as always.", TimestampMS: 5000},
				{SenderName: "Patient", Content: "Also did you see that movie? Totally different subject lol", TimestampMS: 6000},
				{SenderName: "Alex", Content: "You keep changing the subject when I try to talk about feelings", TimestampMS: 7000},
				{SenderName: "Patient", Content: "That's just how I communicate, it's not a problem.", TimestampMS: 8000},
			},
		},
		"jordan_demo": {
			Name:  "jordan_demo",
			Title: "Jordan",
			Participants: []export.Participant{
				{Name: "Patient"},
				{Name: "Jordan"},
			},
			Messages: []export.RawMessage{
				{SenderName: "Jordan", Content: "Hey are you coming tonight?", TimestampMS: 9000},
				{SenderName: "Patient", Content: "Yeah totally! Can't wait to see everyone", TimestampMS: 10000},
				{SenderName: "Jordan", Content: "How are you doing?", TimestampMS: 11000},
				{SenderName: "Patient", Content: "Amazing honestly, everything is great.", TimestampMS: 12000},
				{SenderName: "Jordan", Content: "Really? I heard you've been having a hard time", TimestampMS: 13000},
				{SenderName: "Patient", Content: "Who told you that? I'm totally fine, people exaggerate.", TimestampMS: 14000},
			},
		},
	}
}
