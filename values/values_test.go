// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package values

import (
	"os"
	"testing"
	"time"
)

func TestGetMongoConfigDBCredentials(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		// Setenv restores the environment once the test is done
		t.Setenv(MongoConfigDBUserNameEnv, "")
		os.Unsetenv(MongoConfigDBUserNameEnv)
		t.Setenv(MongoConfigDBPasswordEnv, "secret")
		user, pass := GetMongoConfigDBCredentials()
		if user != DefaultMongoConfigDBUserName || pass != DefaultMongoConfigDBPassword {
			t.Errorf("expected default credentials, got %q %q", user, pass)
		}
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv(MongoConfigDBUserNameEnv, "admin")
		t.Setenv(MongoConfigDBPasswordEnv, "secret")
		user, pass := GetMongoConfigDBCredentials()
		if user != "admin" || pass != "secret" {
			t.Errorf("unexpected credentials %q %q", user, pass)
		}
	})
}

func TestGetBackoffIntervals(t *testing.T) {
	tests := []struct {
		base     string
		max      string
		wantBase time.Duration
		wantMax  time.Duration
	}{
		{"", "", DefaultBackoffBase, DefaultBackoffMax},
		{"100", "800", 100 * time.Millisecond, 800 * time.Millisecond},
		{"abc", "800", DefaultBackoffBase, 800 * time.Millisecond},
		{"-5", "", DefaultBackoffBase, DefaultBackoffMax},
		{"2000", "1000", DefaultBackoffBase, DefaultBackoffMax},
	}

	for _, test := range tests {
		t.Setenv(BackoffBaseMsEnv, test.base)
		t.Setenv(BackoffMaxMsEnv, test.max)
		base, max := GetBackoffIntervals()
		if base != test.wantBase || max != test.wantMax {
			t.Errorf("GetBackoffIntervals() with %q/%q = %v/%v; want %v/%v",
				test.base, test.max, base, max, test.wantBase, test.wantMax)
		}
	}
}
