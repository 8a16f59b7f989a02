package hashmap

// isPrime reports whether n is prime, by trial division over odd factors.
func isPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n < 2 || n%2 == 0 {
		return false
	}

	for f := 3; f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}

	return true
}

// nextPrime returns the smallest prime >= n.
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}

	if n%2 == 0 {
		n++
	}

	for !isPrime(n) {
		n += 2
	}

	return n
}
