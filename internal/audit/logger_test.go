package audit

import "testing"

func TestQueryNormalize(t *testing.T) {
	cases := []struct {
		in        Query
		page, lim int
	}{
		{Query{}, 1, 50},
		{Query{Page: 3, Limit: 20}, 3, 20},
		{Query{Page: -1, Limit: 500}, 1, 50},
	}
	for _, tc := range cases {
		q := tc.in
		q.Normalize()
		if q.Page != tc.page || q.Limit != tc.lim {
			t.Errorf("Normalize(%+v) = page %d limit %d", tc.in, q.Page, q.Limit)
		}
	}
}
