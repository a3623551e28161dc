package service

import (
	"fmt"
	"strings"
)

var dumpSeparator = strings.Repeat("-", 40)

// questionBlock renders one dump block. answer "" omits the official answer.
func questionBlock(id, body, answer string, options ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Exam AWS Certified Solutions Architect - Associate SAA-C03 topic 1 question %s discussion\n\n", id)
	fmt.Fprintf(&b, "Question #: %s\nTopic #: 1\n\n", id)
	b.WriteString("[All AWS Certified Solutions Architect - Associate SAA-C03 Questions]\n\n")
	b.WriteString(body + "\n\n")
	for _, opt := range options {
		b.WriteString(opt + "\n\n")
	}
	if answer != "" {
		fmt.Fprintf(&b, "**Answer: %s**\n\n", answer)
	}
	fmt.Fprintf(&b, "[View on ExamTopics](https://www.examtopics.com/discussions/amazon/view/%s/)\n", id)
	return b.String()
}

func dump(blocks ...string) string {
	return strings.Join(blocks, "\n"+dumpSeparator+"\n\n")
}

// testDump holds 935 (choose two, BC), 12 (no official answer) and 7 (A).
var testDump = dump(
	questionBlock("935", "Which combination of solutions will meet these requirements? (Choose two.)", "BC",
		"A. Use a second Region.", "B. Use an Auto Scaling group.", "C. Use Amazon Aurora.", "D. Use Amazon S3 Glacier."),
	questionBlock("12", "Which storage class is cheapest for archives?", "",
		"A. S3 Standard", "B. S3 One Zone-IA", "C. S3 Glacier Deep Archive"),
	questionBlock("7", "Which service runs containers without servers?", "A",
		"A. AWS Fargate", "B. Amazon EC2", "C. AWS Outposts"),
)
