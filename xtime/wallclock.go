package xtime

import "github.com/badu/wstd/internal/wasip2/clocks/wallclock"

func wallClockNow() wallclock.Datetime { return wallclock.Now() }
