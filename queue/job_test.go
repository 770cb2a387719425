package queue

import "testing"

func TestJobValid(t *testing.T) {
	cases := []struct {
		name string
		job  Job
		want bool
	}{
		{"complete", Job{ID: "a", URL: "https://acme.io", Duration: 30}, true},
		{"missing url", Job{ID: "a", Duration: 30}, false},
		{"zero duration", Job{URL: "https://acme.io"}, false},
		{"negative duration", Job{URL: "https://acme.io", Duration: -5}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.job.Valid(); got != c.want {
				t.Fatalf("Valid() = %v; want %v", got, c.want)
			}
		})
	}
}
