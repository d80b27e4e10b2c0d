package testkit

// Samples are small but varied Rust programs for round-trip tests. None of
// them contains a string literal spanning several lines.
var Samples = map[string]string{
	"hello": `fn main() {
    println!("Hello, world!");
}
`,
	"arith": `fn main() {
    let x = 1 + 2 * 3;
    let y = (x - 4) / 2;
    let mut z = -x;
    z += y % 3;
    let w = -128i8;
    let ok = x < -1 || y >= 0 && !(z == 2);
    println!("{} {} {} {}", x, y, z, ok);
    let _ = w;
}
`,
	"structs": `use std::collections::HashMap;
use std::fmt;

#[derive(Debug, Clone, Default)]
pub struct Point {
    pub x: i64,
    pub y: i64,
}

impl Point {
    pub fn new(x: i64, y: i64) -> Self {
        Point { x, y }
    }

    pub fn dist2(&self, other: &Point) -> i64 {
        let dx = self.x - other.x;
        let dy = self.y - other.y;
        dx * dx + dy * dy
    }
}

impl fmt::Display for Point {
    fn fmt(&self, f: &mut fmt::Formatter<'_>) -> fmt::Result {
        write!(f, "({}, {})", self.x, self.y)
    }
}

fn index(points: &[Point]) -> HashMap<i64, Vec<Point>> {
    let mut out: HashMap<i64, Vec<Point>> = HashMap::new();
    for p in points {
        out.entry(p.x).or_default().push(p.clone());
    }
    out
}
`,
	"control": `enum Shape {
    Circle(f64),
    Rect { w: f64, h: f64 },
}

fn area(s: &Shape) -> f64 {
    match s {
        Shape::Circle(r) => 3.14 * r * r,
        Shape::Rect { w, h } => w * h,
    }
}

fn sum_to(n: u32) -> u32 {
    let mut total = 0;
    let mut i = 0;
    'outer: loop {
        if i > n {
            break 'outer;
        }
        total += i;
        i += 1;
    }
    while total > 1000 {
        total /= 2;
    }
    total
}

fn main() {
    let shapes = vec![Shape::Circle(1.0), Shape::Rect { w: 2.0, h: 3.0 }];
    let total: f64 = shapes.iter().map(|s| area(s)).sum();
    if let Some(first) = shapes.first() {
        let _ = area(first);
    }
    let arr = [0u8; 4];
    let t = (1, "two", 'c');
    let idx = arr[1] as usize;
    let r = &arr[..idx];
    println!("{} {} {:?} {:?}", total, sum_to(10), t, r);
}
`,
	"generics": `use std::ops::Add;

/// Adds two values.
pub fn add<T: Add<Output = T>>(a: T, b: T) -> T {
    a + b
}

pub trait Named {
    const NAME: &'static str;
    fn name(&self) -> String {
        Self::NAME.to_string()
    }
}

struct Unit;

impl Named for Unit {
    const NAME: &'static str = "unit";
}

fn parse(s: &str) -> Result<i32, std::num::ParseIntError> {
    let n: i32 = s.trim().parse()?;
    Ok(n * 2)
}

fn main() {
    let f = |x: i32| -> i32 { x + 1 };
    let v: Vec<Vec<u8>> = Vec::new();
    let _ = (f(1), v.len(), add(1, 2), Unit.name(), parse("4"));
    let s = r#"raw "string""#;
    let b = b'x';
    let _ = (s, b);
}
`,
	"methods": `fn main() {
    let a = 1.max(2);
    let b = 1_000.min(a);
    let c = 0xff.count_ones();
    let d = 2.5f64.max(1.0);
    let r = (1..a).len();
    println!("{} {} {} {} {}", a, b, c, d, r);
}
`,
	"macros": `macro_rules! square {
    ($value:expr) => {
        $value * $value
    };
}

macro_rules! sum {
    () => { 0 };
    ($head:expr $(, $tail:expr)*) => {
        $head + sum!($($tail),*)
    };
}

fn main() {
    let a = square!(3);
    println!("{} {}", a, sum!(1, 2, a));
}
`,
}
