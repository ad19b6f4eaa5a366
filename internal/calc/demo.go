package calc

// Demo is a script exercising the rational operations, where every
// comparison evaluates to true.
const Demo = `# construction
let half = 1/2
let third = 1/3
let twoThirds = 2/3

# arithmetic
let sum = half + third
let difference = half - third
let product = half * third
let quotient = half / third
let negation = -half

sum == 5/6
difference == 1/6
product == 1/6
quotient == 3/2
negation == -1/2
third + third == twoThirds
twoThirds - third == third

# ordering
half < twoThirds
twoThirds > half
third <= third
half != third
half in third..twoThirds
sum in 0..1

# canonicalization
2000000000/4000000000 == 1/2
2/4 == 1/2
-2/4 == 2/-4
912016490186296920119201192141970416029/1824032980372593840238402384283940832058 == half

# display
2/1
-2/4
117/1098
`
